package symbols

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/skybi/symbolist/internal/api/schema"
	"github.com/skybi/symbolist/internal/api/validation"
	"github.com/skybi/symbolist/internal/browse"
	"github.com/skybi/symbolist/internal/paginate"
	"github.com/skybi/symbolist/internal/symbol"
)

// maxTruncation bounds the truncation query parameter
const maxTruncation = 100

// EndpointGetSymbols handles the 'GET /v1/symbols?search={string?}&page={number?:0}&page_size={number?}&truncation={number?}' endpoint
func (service *Service) EndpointGetSymbols(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*schema.Error

	search, validationErr := validation.QueryString(request, "search", maxSearchLength)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	page, validationErr := validation.QueryInt(request, "page", 0, 0, math.MaxInt32)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	pageSize, validationErr := validation.QueryInt(request, "page_size", service.Config.DefaultPageSize, 1, service.Config.MaxPageSize)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	truncation, validationErr := service.queryTruncation(request)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	symbols, err := service.Storage.Symbols().Search(request.Context(), search)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	paginator, err := paginate.New(symbols, pageSize)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	paginator.GoToPage(page)

	view, err := browse.Render(paginator, search, truncation)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, schema.BuildPaginatedResponse(view))
}

// EndpointGetSymbol handles the 'GET /v1/symbols/{name}' endpoint
func (service *Service) EndpointGetSymbol(writer http.ResponseWriter, request *http.Request) {
	name := chi.URLParam(request, "name")

	obj, err := service.Storage.Symbols().GetByName(request.Context(), name)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	service.writer.WriteJSON(writer, obj)
}

// EndpointGetSymbolByGlyph handles the 'GET /v1/glyphs/{glyph}' endpoint
func (service *Service) EndpointGetSymbolByGlyph(writer http.ResponseWriter, request *http.Request) {
	// chi matches against the raw path if the request carries one; the parameter is still escaped then
	glyph := chi.URLParam(request, "glyph")
	if request.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(glyph)
		if err != nil {
			service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
			return
		}
		glyph = unescaped
	}

	obj, err := service.Storage.Symbols().GetByGlyph(request.Context(), glyph)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	service.writer.WriteJSON(writer, obj)
}

// nameList accepts either a JSON array of names or the newline-separated list the SF Symbols app copies
type nameList []string

func (list *nameList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*list = symbol.SplitNames(raw)
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return &json.UnmarshalTypeError{
			Value: string(data),
			Type:  reflect.TypeOf(names),
			Field: "names",
		}
	}
	*list = names
	return nil
}

type endpointReplaceSymbolsRequestPayload struct {
	Names  nameList `json:"names" required:"true"`
	Glyphs *string  `json:"glyphs" required:"true"`
}

type endpointReplaceSymbolsResponse struct {
	Count int `json:"count"`
}

// EndpointReplaceSymbols handles the 'PUT /v1/symbols' endpoint
func (service *Service) EndpointReplaceSymbols(writer http.ResponseWriter, request *http.Request) {
	payload, validationErrs, err := schema.UnmarshalBody[endpointReplaceSymbolsRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	table, err := symbol.Assemble(payload.Names, *payload.Glyphs)
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, schema.ErrSymbolImportInvalid(err))
		return
	}

	if err := service.Storage.Symbols().Replace(request.Context(), table); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	log.Info().Int("amount", len(table)).Msg("replaced the symbol table")

	service.writer.WriteJSON(writer, endpointReplaceSymbolsResponse{Count: len(table)})
}

func (service *Service) queryTruncation(request *http.Request) (int, *schema.Error) {
	return validation.QueryInt(request, "truncation", service.Config.Truncation, 0, maxTruncation)
}
