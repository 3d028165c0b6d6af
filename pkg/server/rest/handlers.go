package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/engine/topology"
	"lintang/mapagent/pkg/server"
)

type MapService interface {
	RadiusSearch(ctx context.Context, points []datastructure.Coordinate, radius float64) ([]topology.PointResult, error)
	NextEdges(ctx context.Context, ref datastructure.EdgeRef) (datastructure.EdgeSet, error)
}

type MapHandler struct {
	svc      MapService
	metrics  *server.Metrics
	logger   *slog.Logger
	validate *validator.Validate
	trans    ut.Translator
}

func NewMapHandler(svc MapService, m *server.Metrics, logger *slog.Logger) *MapHandler {
	if logger == nil {
		logger = slog.Default()
	}
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &MapHandler{
		svc:      svc,
		metrics:  m,
		logger:   logger,
		validate: validate,
		trans:    trans,
	}
}

// Coord model info
//
//	@Description	WGS84 coordinate in degrees
type Coord struct {
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
}

// RadiusSearchRequest model info
//
//	@Description	request body for radius search, radius in meters
type RadiusSearchRequest struct {
	Points []Coord  `json:"points" validate:"required,min=1,dive"`
	Radius *float64 `json:"radius" validate:"required,gte=0"`
}

func (s *RadiusSearchRequest) Bind(r *http.Request) error {
	if len(s.Points) == 0 {
		return errors.New("points must not be empty")
	}
	if s.Radius == nil {
		return errors.New("radius is required")
	}
	return nil
}

// NextEdgesRequest model info
//
//	@Description	request body for next edges. negative id = edge traversed against its stored order
type NextEdgesRequest struct {
	ID   *int64 `json:"id" validate:"required"`
	Meta string `json:"meta"`
}

func (s *NextEdgesRequest) Bind(r *http.Request) error {
	if s.ID == nil {
		return errors.New("id is required")
	}
	return nil
}

// EdgeResponse model info
//
//	@Description	directed edge
type EdgeResponse struct {
	ID       int64             `json:"id"`
	Meta     string            `json:"meta"`
	Fow      datastructure.FOW `json:"fow"`
	Frc      datastructure.FRC `json:"frc"`
	Len      uint32            `json:"len"`
	Coords   []Coord           `json:"coords"`
	Polyline string            `json:"polyline,omitempty"`
}

// EdgeSetResponse model info
//
//	@Description	edge set of one query point, error set when that point failed
type EdgeSetResponse struct {
	Edges []EdgeResponse `json:"edges"`
	Code  string         `json:"code,omitempty"`
	Error string         `json:"error,omitempty"`
}

// RadiusSearchResponse model info
//
//	@Description	one edge set per request point, in request order
type RadiusSearchResponse struct {
	EdgeSets []EdgeSetResponse `json:"edge_sets"`
}

func RenderEdgeSet(set datastructure.EdgeSet, withPolyline bool) EdgeSetResponse {
	edges := make([]EdgeResponse, 0, len(set.Edges))
	for _, e := range set.Edges {
		coords := make([]Coord, 0, len(e.Coords))
		for _, c := range e.Coords {
			coords = append(coords, Coord{Lon: c.Lon, Lat: c.Lat})
		}
		resp := EdgeResponse{
			ID:     e.ID,
			Meta:   e.Meta,
			Fow:    e.Fow,
			Frc:    e.Frc,
			Len:    e.Length,
			Coords: coords,
		}
		if withPolyline {
			resp.Polyline = datastructure.CreatePolyline(e.Coords)
		}
		edges = append(edges, resp)
	}
	return EdgeSetResponse{Edges: edges}
}

func RenderRadiusSearchResponse(results []topology.PointResult, withPolyline bool) *RadiusSearchResponse {
	sets := make([]EdgeSetResponse, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			sets = append(sets, EdgeSetResponse{
				Edges: []EdgeResponse{},
				Code:  server.CodeOf(res.Err).String(),
				Error: pointErrorText(res.Err),
			})
			continue
		}
		sets = append(sets, RenderEdgeSet(res.EdgeSet, withPolyline))
	}
	return &RadiusSearchResponse{EdgeSets: sets}
}

func pointErrorText(err error) string {
	if server.CodeOf(err) == server.ErrInternalServerError {
		return "internal server error"
	}
	return userMessage(err)
}

func wantPolyline(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("polyline"))
	return err == nil && v
}

func (h *MapHandler) bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	if err := h.validate.Struct(data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

func (h *MapHandler) serviceError(w http.ResponseWriter, r *http.Request, method string, err error) {
	h.logger.Warn("request failed",
		"request_id", middleware.GetReqID(r.Context()),
		"method", method,
		"code", server.CodeOf(err).String(),
		"error", err)
	render.Render(w, r, ErrFromService(err))
}

// RadiusSearch
//
//	@Summary		directed edges within radius meters of each point
//	@Tags			map
//	@Param			body		body	RadiusSearchRequest	true	"points and radius"
//	@Param			polyline	query	bool				false	"add encoded polyline per edge"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/map/radius-search [post]
//	@Success		200	{object}	RadiusSearchResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		503	{object}	ErrResponse
//	@Failure		504	{object}	ErrResponse
func (h *MapHandler) RadiusSearch(w http.ResponseWriter, r *http.Request) {
	data := &RadiusSearchRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}

	points := make([]datastructure.Coordinate, 0, len(data.Points))
	for _, p := range data.Points {
		points = append(points, datastructure.NewCoordinate(p.Lat, p.Lon))
	}
	results, err := h.svc.RadiusSearch(r.Context(), points, *data.Radius)
	if err != nil {
		h.serviceError(w, r, "RadiusSearch", err)
		return
	}
	for i, res := range results {
		if res.Err != nil {
			h.logger.Warn("radius search point failed",
				"request_id", middleware.GetReqID(r.Context()),
				"index", i,
				"code", server.CodeOf(res.Err).String(),
				"error", res.Err)
			continue
		}
		h.metrics.ObserveEdges("RadiusSearch", res.EdgeSet.Len())
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRadiusSearchResponse(results, wantPolyline(r)))
}

// NextEdges
//
//	@Summary		directed edges enterable right after the given directed edge
//	@Tags			map
//	@Param			body		body	NextEdgesRequest	true	"signed edge id and meta"
//	@Param			polyline	query	bool				false	"add encoded polyline per edge"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/map/next-edges [post]
//	@Success		200	{object}	EdgeSetResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *MapHandler) NextEdges(w http.ResponseWriter, r *http.Request) {
	data := &NextEdgesRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}

	set, err := h.svc.NextEdges(r.Context(), datastructure.NewEdgeRef(*data.ID, data.Meta))
	if err != nil {
		h.serviceError(w, r, "NextEdges", err)
		return
	}
	h.metrics.ObserveEdges("NextEdges", set.Len())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderEdgeSet(set, wantPolyline(r)))
}
