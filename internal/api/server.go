package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/parnorm/internal/reduce"
	"github.com/samcharles93/parnorm/internal/tensor"
	"github.com/samcharles93/parnorm/internal/version"
)

// Supported reduction ops.
const (
	OpMaxNorm   = "maxnorm"
	OpFrobenius = "frobenius"
	OpDot       = "dot"
	OpDotBlocks = "dot_blocks"
)

var ops = []string{OpMaxNorm, OpFrobenius, OpDot, OpDotBlocks}

type Server struct {
	clock func() time.Time
}

func NewServer() *Server {
	return &Server{
		clock: time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/reductions", s.handleCreateReduction)
	e.GET("/v1/reductions/ops", s.handleListOps)
	e.GET("/healthz", s.handleHealth)
}

func (s *Server) handleCreateReduction(c *echo.Context) error {
	req, err := decodeJSON[ReductionRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	tol := reduce.DefaultTolerance
	if req.Tolerance != nil {
		if *req.Tolerance <= 0 {
			return writeBadRequest(c, "tolerance must be positive")
		}
		tol = *req.Tolerance
	}

	start := s.clock()
	result, reference, workers, err := s.run(&req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) ||
			errors.Is(err, reduce.ErrEmpty) ||
			errors.Is(err, reduce.ErrShapeMismatch) ||
			errors.Is(err, reduce.ErrInvalidPartition) {
			return writeBadRequest(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "", "")
	}
	elapsed := s.clock().Sub(start)

	return c.JSON(http.StatusOK, ReductionResponse{
		ID:        newReductionID(),
		Object:    "reduction",
		CreatedAt: start.Unix(),
		Op:        req.Op,
		Result:    result,
		Reference: reference,
		Match:     reduce.Close(result, reference, tol),
		Tolerance: tol,
		Workers:   workers,
		ElapsedUS: elapsed.Microseconds(),
	})
}

func (s *Server) handleListOps(c *echo.Context) error {
	return c.JSON(http.StatusOK, OpsResponse{
		Object: "reduction.ops",
		Ops:    ops,
	})
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.String(),
	})
}

// run dispatches the request to the matching reduction and returns the
// parallel result, the sequential reference and the worker count used.
func (s *Server) run(req *ReductionRequest) (result, reference float64, workers int, err error) {
	switch req.Op {
	case OpMaxNorm, OpFrobenius:
		m, err := requestMatrix(req)
		if err != nil {
			return 0, 0, 0, err
		}
		if req.Op == OpMaxNorm {
			result, err = reduce.MaxAbs(&m)
			if err != nil {
				return 0, 0, 0, err
			}
			reference, err = reduce.MaxAbsRef(&m)
		} else {
			result, err = reduce.Frobenius(&m)
			if err != nil {
				return 0, 0, 0, err
			}
			reference, err = reduce.FrobeniusRef(&m)
		}
		return result, reference, m.R, err

	case OpDot, OpDotBlocks:
		a, b, err := requestVectors(req)
		if err != nil {
			return 0, 0, 0, err
		}
		if req.Op == OpDot {
			result, err = reduce.Dot(a, b)
			workers = len(a)
		} else {
			result, err = reduce.DotBlocks(a, b, req.BlockSize)
			if req.BlockSize > 0 {
				workers = len(a) / req.BlockSize
			}
		}
		if err != nil {
			return 0, 0, 0, err
		}
		reference, err = reduce.DotRef(a, b)
		return result, reference, workers, err

	default:
		return 0, 0, 0, newInvalidRequest("unsupported op " + req.Op)
	}
}

func requestMatrix(req *ReductionRequest) (tensor.Mat, error) {
	if len(req.Matrix) > 0 {
		cols := len(req.Matrix[0])
		data := make([]float64, 0, len(req.Matrix)*cols)
		for _, row := range req.Matrix {
			if len(row) != cols {
				return tensor.Mat{}, newInvalidRequest("matrix rows have unequal lengths")
			}
			data = append(data, row...)
		}
		return tensor.NewMatFromData(len(req.Matrix), cols, data), nil
	}
	if req.Rows < 1 || req.Cols < 1 {
		return tensor.Mat{}, newInvalidRequest("matrix or positive rows/cols required")
	}
	m := tensor.NewMat(req.Rows, req.Cols)
	m.FillRamp(req.Start)
	return m, nil
}

func requestVectors(req *ReductionRequest) (tensor.Vec, tensor.Vec, error) {
	if len(req.A) > 0 || len(req.B) > 0 {
		return tensor.Vec(req.A), tensor.Vec(req.B), nil
	}
	if req.Length < 1 {
		return nil, nil, newInvalidRequest("a/b or positive length required")
	}
	a := tensor.NewVec(req.Length)
	b := tensor.NewVec(req.Length)
	a.FillRamp(req.Start)
	b.FillRamp(req.Start)
	return a, b, nil
}
