package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FitrahHaque/Huffman-Engine/compressor/huffman"
	"github.com/FitrahHaque/Huffman-Engine/engine"
	"github.com/FitrahHaque/Huffman-Engine/logger"
)

const octetStream = "application/octet-stream"

// DefaultMaxBody caps request bodies at 32 MiB.
const DefaultMaxBody = 32 << 20

type Handler struct {
	log     logger.Logger
	maxBody int64
}

func NewHandler(l logger.Logger, maxBody int64) *Handler {
	if l == nil {
		l = logger.Nop()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &Handler{log: l, maxBody: maxBody}
}

type codebookResp struct {
	Symbols  int               `json:"symbols"`
	Entropy  float64           `json:"entropy"`
	Codebook map[string]string `json:"codebook"`
}

func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (h *Handler) Compress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := huffman.Compress(body)
	if err != nil {
		h.log.Errorf("compress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.log.Infof("compressed %d -> %d bytes", len(body), len(out))
	c.Data(http.StatusOK, octetStream, out)
}

func (h *Handler) Decompress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := huffman.Decompress(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

func (h *Handler) Codebook(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	cb, err := huffman.BuildCode(huffman.Frequencies(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := codebookResp{
		Symbols:  len(cb),
		Entropy:  engine.Entropy(body),
		Codebook: make(map[string]string, len(cb)),
	}
	for sym, code := range cb {
		resp.Codebook[string(rune(sym))] = string(code)
	}
	c.JSON(http.StatusOK, resp)
}

func Register(r *gin.Engine, h *Handler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", h.Compress)
		v1.POST("/decompress", h.Decompress)
		v1.POST("/codebook", h.Codebook)
	}
}

// NewRouter returns a gin engine with recovery middleware and all routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	Register(r, h)
	return r
}
