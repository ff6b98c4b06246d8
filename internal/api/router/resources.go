package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/resource-hub/internal/apperr"
	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/pipeline"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/combined-"

type ResourceRouter struct {
	e       *echo.Echo
	service *pipeline.Service
}

func NewResourceRouter(e *echo.Echo, service *pipeline.Service) *ResourceRouter {
	return &ResourceRouter{
		e:       e,
		service: service,
	}
}

func (r *ResourceRouter) Bind() {
	r.e.GET(apiPrefix+"blog", r.ListBlog)
	r.e.GET(apiPrefix+"case-studies", r.ListCaseStudies)
	r.e.GET(apiPrefix+"news", r.ListNews)
	r.e.GET(apiPrefix+"updates", r.ListUpdates)
	r.e.GET(apiPrefix+"resources", r.ListResources)

	for _, kind := range resource.Kinds {
		spec := resource.MustSpec(kind)
		r.e.GET(apiPrefix+spec.RoutePrefix+"/:id", r.GetResource(kind))
	}
}

// ListBlog godoc
// @Summary List blog posts
// @Description Canonical and custom blog posts merged by id, filtered, sorted by date and limited
// @Tags resources
// @Produce json
// @Param featured query string false "Only featured posts when 'true'"
// @Param tag query string false "Case-insensitive exact tag"
// @Param search query string false "Substring across title, description and tags"
// @Param author query string false "Author name substring"
// @Param limit query int false "Maximum number of results"
// @Param debug query string false "Wrap the result with dataset statistics when 'true'"
// @Success 200 {array} resource.Resource
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/combined-blog [get]
func (r *ResourceRouter) ListBlog(c echo.Context) error {
	return r.listKind(c, resource.KindBlog)
}

// ListCaseStudies godoc
// @Summary List case studies
// @Tags resources
// @Produce json
// @Param featured query string false "Only featured case studies when 'true'"
// @Param tag query string false "Case-insensitive exact tag"
// @Param search query string false "Substring across title, description, challenge, solution, results and tags"
// @Param client query string false "Client name substring"
// @Param industry query string false "Exact industry"
// @Param limit query int false "Maximum number of results"
// @Param debug query string false "Wrap the result with dataset statistics when 'true'"
// @Success 200 {array} resource.Resource
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/combined-case-studies [get]
func (r *ResourceRouter) ListCaseStudies(c echo.Context) error {
	return r.listKind(c, resource.KindCaseStudies)
}

// ListNews godoc
// @Summary List news
// @Tags resources
// @Produce json
// @Param featured query string false "Only featured news when 'true'"
// @Param tag query string false "Case-insensitive exact tag"
// @Param search query string false "Substring across title, description and tags"
// @Param author query string false "Author name substring"
// @Param limit query int false "Maximum number of results"
// @Param debug query string false "Wrap the result with dataset statistics when 'true'"
// @Success 200 {array} resource.Resource
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/combined-news [get]
func (r *ResourceRouter) ListNews(c echo.Context) error {
	return r.listKind(c, resource.KindNews)
}

// UpdatesResponse wraps the update listing with counts of the returned page.
type UpdatesResponse struct {
	Updates  []resource.Resource `json:"updates"`
	Total    int                 `json:"total"`
	Critical int                 `json:"critical"`
	Featured int                 `json:"featured"`
	Filters  map[string]string   `json:"filters"`
	Debug    *pipeline.Debug     `json:"debug,omitempty"`
}

// ListUpdates godoc
// @Summary List product updates
// @Description Critical updates are always listed first
// @Tags resources
// @Produce json
// @Param featured query string false "Only featured updates when 'true'"
// @Param tag query string false "Case-insensitive exact tag"
// @Param search query string false "Substring across title, description and tags"
// @Param priority query string false "Exact priority"
// @Param updateCategory query string false "Exact update category"
// @Param changeType query string false "Exact change type"
// @Param version query string false "Version substring"
// @Param affectedProduct query string false "Affected product substring"
// @Param sortBy query string false "date, title, readTime, priority or version"
// @Param sortOrder query string false "asc or desc"
// @Param limit query int false "Maximum number of results"
// @Param debug query string false "Add dataset statistics when 'true'"
// @Success 200 {object} UpdatesResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/combined-updates [get]
func (r *ResourceRouter) ListUpdates(c echo.Context) error {
	spec := resource.MustSpec(resource.KindUpdates)
	q := parseQuery(c, spec)

	listing, err := r.service.List(c.Request().Context(), resource.KindUpdates, q)
	if err != nil {
		return err
	}

	res := UpdatesResponse{
		Updates: listing.Items,
		Total:   len(listing.Items),
		Filters: q.Criteria.Active(),
		Debug:   listing.Debug,
	}
	for _, u := range listing.Items {
		if u.IsCritical() {
			res.Critical++
		}
		if u.Featured {
			res.Featured++
		}
	}
	return c.JSON(http.StatusOK, res)
}

// ListResources godoc
// @Summary List every resource kind at once
// @Tags resources
// @Produce json
// @Param featured query string false "Only featured resources when 'true'"
// @Param tag query string false "Case-insensitive exact tag"
// @Param search query string false "Substring across title, description and tags"
// @Param type query string false "Exact resource type"
// @Param author query string false "Author name substring"
// @Param limit query int false "Maximum number of results"
// @Param debug query string false "Wrap the result with dataset statistics when 'true'"
// @Success 200 {array} resource.Resource
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/combined-resources [get]
func (r *ResourceRouter) ListResources(c echo.Context) error {
	q := parseQuery(c, resource.AggregateSpec)

	listing, err := r.service.ListAll(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return respond(c, resource.AggregateSpec, listing)
}

// GetResource godoc
// @Summary Get one resource by id or slug
// @Tags resources
// @Produce json
// @Param id path string true "Resource id or slug"
// @Success 200 {object} resource.Resource
// @Failure 404 {object} apperr.ErrorResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/combined-blog/{id} [get]
// @Router /api/combined-case-studies/{id} [get]
// @Router /api/combined-news/{id} [get]
// @Router /api/combined-updates/{id} [get]
func (r *ResourceRouter) GetResource(kind resource.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Param("id")

		res, err := r.service.Get(c.Request().Context(), kind, key)
		if errors.Is(err, pipeline.ErrNotFound) {
			return apperr.NewNotFound(string(kind), key, err)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}

func (r *ResourceRouter) listKind(c echo.Context, kind resource.Kind) error {
	spec := resource.MustSpec(kind)

	listing, err := r.service.List(c.Request().Context(), kind, parseQuery(c, spec))
	if err != nil {
		return err
	}
	return respond(c, spec, listing)
}

// respond writes a bare array, or the collection next to its debug block.
func respond(c echo.Context, spec resource.KindSpec, listing *pipeline.Listing) error {
	if listing.Debug == nil {
		return c.JSON(http.StatusOK, listing.Items)
	}
	return c.JSON(http.StatusOK, map[string]any{
		spec.Collection: listing.Items,
		"debug":         listing.Debug,
	})
}

// parseQuery reads the listing parameters. Values it does not understand
// are ignored.
func parseQuery(c echo.Context, spec resource.KindSpec) pipeline.Query {
	q := pipeline.Query{
		Criteria: pipeline.Criteria{
			Featured: c.QueryParam("featured") == "true",
			Tag:      strings.TrimSpace(c.QueryParam("tag")),
			Search:   strings.TrimSpace(c.QueryParam("search")),
		},
		Limit: pipeline.ParseLimit(c.QueryParam("limit")),
		Debug: c.QueryParam("debug") == "true",
	}

	for _, f := range spec.Facets {
		if v := strings.TrimSpace(c.QueryParam(f.Param)); v != "" {
			if q.Criteria.Facets == nil {
				q.Criteria.Facets = make(map[string]string)
			}
			q.Criteria.Facets[f.Param] = v
		}
	}

	if spec.AcceptsSort {
		q.SortBy = strings.TrimSpace(c.QueryParam("sortBy"))
		q.Order = pipeline.ParseOrder(c.QueryParam("sortOrder"))
	}
	return q
}
