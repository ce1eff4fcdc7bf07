package symbols

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/skybi/symbolist/internal/api/schema"
	"github.com/skybi/symbolist/internal/browse"
)

type sessionContextKey struct{}

// MiddlewareFetchSession resolves the browsing session referenced by the 'id' URL parameter and makes it available
// to the next handler
func (service *Service) MiddlewareFetchSession(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := uuid.Parse(chi.URLParam(request, "id"))
		if err != nil {
			service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrBrowseSessionNotFound)
			return
		}

		session, err := service.Browse.Get(id)
		if err != nil {
			if errors.Is(err, browse.ErrSessionNotFound) {
				service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrBrowseSessionNotFound)
				return
			}
			service.writer.WriteInternalError(writer, err)
			return
		}

		next(writer, request.WithContext(context.WithValue(request.Context(), sessionContextKey{}, session)))
	}
}

func sessionFromRequest(request *http.Request) *browse.Session {
	return request.Context().Value(sessionContextKey{}).(*browse.Session)
}

type endpointCreateBrowseSessionRequestPayload struct {
	Search   string `json:"search"`
	PageSize int    `json:"page_size" min:"0"`
}

// EndpointCreateBrowseSession handles the 'POST /v1/browse?truncation={number?}' endpoint
func (service *Service) EndpointCreateBrowseSession(writer http.ResponseWriter, request *http.Request) {
	truncation, validationErr := service.queryTruncation(request)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	payload, validationErrs, err := schema.UnmarshalBody[endpointCreateBrowseSessionRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}
	search, validationErr := validateSearch(payload.Search)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	session, err := service.Browse.Create(request.Context(), search, payload.PageSize)
	if err != nil {
		if errors.Is(err, browse.ErrPageSizeOutOfRange) {
			service.writer.WriteErrors(writer, http.StatusBadRequest, schema.ErrBrowsePageSizeOutOfRange(service.Config.MaxPageSize))
			return
		}
		service.writer.WriteInternalError(writer, err)
		return
	}
	log.Debug().Str("session", session.ID.String()).Str("search", search).Msg("created a browsing session")

	service.writeSessionView(writer, http.StatusCreated, session, truncation)
}

// EndpointGetBrowseSession handles the 'GET /v1/browse/{id}?truncation={number?}' endpoint
func (service *Service) EndpointGetBrowseSession(writer http.ResponseWriter, request *http.Request) {
	service.navigate(writer, request, func(_ *browse.Session) {})
}

type endpointSearchBrowseSessionRequestPayload struct {
	Search *string `json:"search" required:"true"`
}

// EndpointSearchBrowseSession handles the 'PATCH /v1/browse/{id}?truncation={number?}' endpoint
func (service *Service) EndpointSearchBrowseSession(writer http.ResponseWriter, request *http.Request) {
	session := sessionFromRequest(request)

	truncation, validationErr := service.queryTruncation(request)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	payload, validationErrs, err := schema.UnmarshalBody[endpointSearchBrowseSessionRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}
	search, validationErr := validateSearch(*payload.Search)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	if err := session.Search(request.Context(), search); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writeSessionView(writer, http.StatusOK, session, truncation)
}

// EndpointNextPage handles the 'POST /v1/browse/{id}/next?truncation={number?}' endpoint
func (service *Service) EndpointNextPage(writer http.ResponseWriter, request *http.Request) {
	service.navigate(writer, request, (*browse.Session).Next)
}

// EndpointPreviousPage handles the 'POST /v1/browse/{id}/previous?truncation={number?}' endpoint
func (service *Service) EndpointPreviousPage(writer http.ResponseWriter, request *http.Request) {
	service.navigate(writer, request, (*browse.Session).Previous)
}

type endpointGoToPageRequestPayload struct {
	Page *int `json:"page" required:"true" min:"0"`
}

// EndpointGoToPage handles the 'PUT /v1/browse/{id}/page?truncation={number?}' endpoint.
// Pages beyond the last one are clamped instead of rejected.
func (service *Service) EndpointGoToPage(writer http.ResponseWriter, request *http.Request) {
	payload, validationErrs, err := schema.UnmarshalBody[endpointGoToPageRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	page := *payload.Page
	if page > math.MaxInt32 {
		page = math.MaxInt32
	}
	service.navigate(writer, request, func(session *browse.Session) {
		session.GoTo(page)
	})
}

// EndpointDeleteBrowseSession handles the 'DELETE /v1/browse/{id}' endpoint
func (service *Service) EndpointDeleteBrowseSession(writer http.ResponseWriter, request *http.Request) {
	session := sessionFromRequest(request)

	if err := service.Browse.Delete(session.ID); err != nil {
		if errors.Is(err, browse.ErrSessionNotFound) {
			service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrBrowseSessionNotFound)
			return
		}
		service.writer.WriteInternalError(writer, err)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}

func (service *Service) navigate(writer http.ResponseWriter, request *http.Request, move func(session *browse.Session)) {
	session := sessionFromRequest(request)

	truncation, validationErr := service.queryTruncation(request)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	move(session)
	service.writeSessionView(writer, http.StatusOK, session, truncation)
}

func (service *Service) writeSessionView(writer http.ResponseWriter, code int, session *browse.Session, truncation int) {
	view, err := session.View(truncation)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSONCode(writer, code, schema.BuildPaginatedResponse(view))
}

func validateSearch(search string) (string, *schema.Error) {
	search = strings.TrimSpace(search)
	if n := utf8.RuneCountInString(search); n > maxSearchLength {
		return "", schema.ErrBrowseSearchTooLong(n, maxSearchLength)
	}
	return search, nil
}
