package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// SearchController serves path searches.
type SearchController struct {
	recorder *metrics.Recorder
	logger   *zap.Logger
	maxCells int
	defaults []astar.Option
}

// NewSearchController builds a controller. defaults are applied before any
// per-request heuristic or frontier.
func NewSearchController(rec *metrics.Recorder, logger *zap.Logger, maxCells int, defaults []astar.Option) *SearchController {
	return &SearchController{
		recorder: rec,
		logger:   logger,
		maxCells: maxCells,
		defaults: defaults,
	}
}

// Register registers the search routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	route.POST("/search", sc.search)
}

// Per-cell and fixed allowances for the request body limit. A cell is at
// most a signed 32-bit integer plus separator and padding.
const (
	bytesPerCell    = 24
	bodyOverheadMax = 4 << 10
)

// bodyLimit is the largest request body accepted for the configured cell
// limit.
func (sc *SearchController) bodyLimit() int64 {
	return int64(sc.maxCells)*bytesPerCell + bodyOverheadMax
}

func (sc *SearchController) search(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, sc.bodyLimit())

	var req SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body exceeds the grid size limit"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cells := 0
	for _, row := range req.Grid {
		cells += len(row)
	}
	if cells > sc.maxCells {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "grid exceeds the cell limit"})
		return
	}

	gridOpts := gridgraph.DefaultGridOptions()
	if req.ObstacleValue != nil {
		gridOpts.ObstacleValue = *req.ObstacleValue
	}
	gg, err := gridgraph.NewGridGraph(req.Grid, gridOpts)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, err := sc.options(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, goal := req.Start.cell(), req.Goal.cell()
	res, err := sc.recorder.Search(gg, start, goal, opts...)
	switch {
	case errors.Is(err, astar.ErrInvalidEndpoint), errors.Is(err, astar.ErrOptionViolation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		sc.logger.Error("search failed", zap.Error(err), zap.String("request_id", requestID(ctx)))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	resp := SearchResponse{
		ID:       requestID(ctx),
		Found:    res.Found,
		Path:     toPoints(res.Path),
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Events:   toEvents(res.Events),
	}
	if resp.Path == nil {
		resp.Path = []Point{}
	}
	if !res.Found && gg.Free(start) && gg.Free(goal) {
		if walls, err := gg.BreachWalls(start, goal); err == nil {
			resp.Breach = toPoints(walls)
		}
	}

	sc.logger.Debug("search served",
		zap.String("request_id", resp.ID),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Bool("found", res.Found),
		zap.Int("expanded", res.Expanded))
	ctx.JSON(http.StatusOK, resp)
}

// options merges controller defaults with per-request overrides.
func (sc *SearchController) options(req SearchRequest) ([]astar.Option, error) {
	opts := append([]astar.Option(nil), sc.defaults...)
	if req.Heuristic != "" {
		h, err := astar.HeuristicByName(req.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithHeuristic(h))
	}
	if req.Frontier != "" {
		k, err := astar.FrontierByName(req.Frontier)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithFrontier(k))
	}
	if req.Trace {
		opts = append(opts, astar.WithTrace())
	}

	return opts, nil
}
