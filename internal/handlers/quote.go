package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quotely-dev/quotely/internal/models"
	"github.com/quotely-dev/quotely/internal/store"
	"github.com/quotely-dev/quotely/internal/types"
	"github.com/quotely-dev/quotely/internal/utils"
	"go.uber.org/zap"
)

type QuoteRequest struct {
	Text         string   `json:"text" binding:"required"`
	SourceTitle  string   `json:"sourceTitle"`
	SourceAuthor string   `json:"sourceAuthor"`
	SourceURL    string   `json:"sourceUrl"`
	Note         string   `json:"note"`
	Tags         []string `json:"tags"`
}

func (r *QuoteRequest) toInput() store.QuoteInput {
	return store.QuoteInput{
		Text:         r.Text,
		SourceTitle:  r.SourceTitle,
		SourceAuthor: r.SourceAuthor,
		SourceURL:    r.SourceURL,
		Note:         r.Note,
		Tags:         r.Tags,
	}
}

type QuoteHandler struct {
	quotes  *store.QuoteRepository
	queries *store.QuoteQueries
	logger  *zap.Logger
}

func NewQuoteHandler(quotes *store.QuoteRepository, queries *store.QuoteQueries, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, queries: queries, logger: logger}
}

func (h *QuoteHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req QuoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	quote, err := h.quotes.Create(userID, req.toInput())

	if err != nil {
		h.logger.Error("failed to create quote", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, quoteResponse(quote))
}

func (h *QuoteHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quotes, err := h.queries.ListAll(userID)

	if err != nil {
		h.logger.Error("failed to list quotes", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items := make([]types.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		items = append(items, quoteResponse(&quotes[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *QuoteHandler) Random(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quote, err := h.queries.PickRandom(userID, ctx.Query("tag"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No quotes found"})
			return
		}
		h.logger.Error("failed to pick random quote", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, quoteResponse(quote))
}

func (h *QuoteHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quoteID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	var req QuoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	quote, err := h.quotes.Update(userID, quoteID, req.toInput())

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		h.logger.Error("failed to update quote", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, quoteResponse(quote))
}

func (h *QuoteHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quoteID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	if err := h.quotes.Delete(userID, quoteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		h.logger.Error("failed to delete quote", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func quoteResponse(quote *models.Quote) types.QuoteResponse {
	return types.QuoteResponse{
		ID:           quote.ID,
		Text:         quote.Text,
		SourceTitle:  quote.SourceTitle,
		SourceAuthor: quote.SourceAuthor,
		SourceURL:    quote.SourceURL,
		Note:         quote.Note,
		Tags:         quote.TagNames(),
		CreatedAt:    quote.CreatedAt,
		UpdatedAt:    quote.UpdatedAt,
	}
}
