package handlers

import (
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"officetools/internal/application/tools/imaging"
	"officetools/internal/application/tools/zakat"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

const (
	defaultMaxImageBytes = 10 << 20
	maxMarkdownBytes     = 100 << 10
)

// ImageToolSlug maps an image request to the catalog tool gating it. Any
// request whose output format differs from the upload's format counts as a
// conversion.
func ImageToolSlug(c *gin.Context) (string, error) {
	op, err := imaging.NormalizeOperation(c.PostForm("operation"))
	if err != nil {
		return "", err
	}

	fh, err := uploadedImage(c)
	if err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	srcFormat, err := imaging.SourceFormat(f)
	if err != nil {
		return "", err
	}
	outFormat, err := imaging.OutputFormat(op, c.PostForm("format"), srcFormat)
	if err != nil {
		return "", err
	}
	if op == imaging.OpConvert || outFormat != srcFormat {
		return "image-converter", nil
	}

	switch op {
	case imaging.OpCrop:
		return "image-cropper", nil
	case imaging.OpCompress:
		return "image-compressor", nil
	default:
		return "image-resizer", nil
	}
}

func uploadedImage(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return nil, errors.NewPayloadTooLargeError("image too large")
		}
		return nil, errors.NewValidationError("file is required")
	}
	return fh, nil
}

type ToolHandler struct {
	grammar       grammarChecker
	images        imageProcessor
	markdown      markdownRenderer
	maxImageBytes int64
	logger        logger.Interface
}

func NewToolHandler(
	grammar grammarChecker,
	images imageProcessor,
	markdown markdownRenderer,
	maxImageBytes int64,
	logger logger.Interface,
) *ToolHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = defaultMaxImageBytes
	}
	return &ToolHandler{
		grammar:       grammar,
		images:        images,
		markdown:      markdown,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

// MaxImageBytes is the effective upload limit.
func (h *ToolHandler) MaxImageBytes() int64 {
	return h.maxImageBytes
}

type GrammarCheckRequest struct {
	Text string `json:"text" binding:"required"`
}

// ZakatRequest carries amounts as decimal strings. Empty fields count as zero.
type ZakatRequest struct {
	Cash               string `json:"cash"`
	GoldGrams          string `json:"gold_grams"`
	SilverGrams        string `json:"silver_grams"`
	GoldPricePerGram   string `json:"gold_price_per_gram"`
	SilverPricePerGram string `json:"silver_price_per_gram"`
	Investments        string `json:"investments"`
	BusinessAssets     string `json:"business_assets"`
	Receivables        string `json:"receivables"`
	Liabilities        string `json:"liabilities"`
	NisabBasis         string `json:"nisab_basis" binding:"omitempty,oneof=gold silver"`
}

func (r ZakatRequest) toInput() (zakat.Input, error) {
	in := zakat.Input{NisabBasis: r.NisabBasis}
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"cash", r.Cash, &in.Cash},
		{"gold_grams", r.GoldGrams, &in.GoldGrams},
		{"silver_grams", r.SilverGrams, &in.SilverGrams},
		{"gold_price_per_gram", r.GoldPricePerGram, &in.GoldPricePerGram},
		{"silver_price_per_gram", r.SilverPricePerGram, &in.SilverPricePerGram},
		{"investments", r.Investments, &in.Investments},
		{"business_assets", r.BusinessAssets, &in.BusinessAssets},
		{"receivables", r.Receivables, &in.Receivables},
		{"liabilities", r.Liabilities, &in.Liabilities},
	}
	for _, f := range fields {
		d, err := zakat.ParseAmount(f.name, f.raw)
		if err != nil {
			return zakat.Input{}, err
		}
		*f.dst = d
	}
	return in, nil
}

type MarkdownRequest struct {
	Markdown string `json:"markdown"`
}

type MarkdownResponse struct {
	HTML string `json:"html"`
}

// GrammarCheck handles POST /api/tools/grammar-check
// @Summary Check grammar
// @Description Applies the rule table and returns matches plus corrected text
// @Tags tools
// @Accept json
// @Produce json
// @Param request body GrammarCheckRequest true "Text to check"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tools/grammar-check [post]
func (h *ToolHandler) GrammarCheck(c *gin.Context) {
	var req GrammarCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.grammar.Check(req.Text)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Zakat handles POST /api/tools/zakat
// @Summary Calculate zakat
// @Tags tools
// @Accept json
// @Produce json
// @Param request body ZakatRequest true "Assets and liabilities"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tools/zakat [post]
func (h *ToolHandler) Zakat(c *gin.Context) {
	var req ZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := zakat.Calculate(in)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Markdown handles POST /api/tools/markdown
// @Summary Render markdown
// @Description Renders GitHub-flavoured markdown to sanitized HTML
// @Tags tools
// @Accept json
// @Produce json
// @Param request body MarkdownRequest true "Markdown source"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tools/markdown [post]
func (h *ToolHandler) Markdown(c *gin.Context) {
	var req MarkdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}
	if len(req.Markdown) > maxMarkdownBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("markdown too large",
			fmt.Sprintf("at most %d bytes", maxMarkdownBytes)))
		return
	}

	out, err := h.markdown.ToHTMLSanitized(req.Markdown)
	if err != nil {
		h.logger.Errorw("failed to render markdown", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", MarkdownResponse{HTML: out})
}

// ProcessImage handles POST /api/tools/image
// @Summary Process an image
// @Description Resize, crop, convert or compress an uploaded image
// @Tags tools
// @Accept multipart/form-data
// @Produce image/jpeg
// @Produce image/png
// @Param file formData file true "Image"
// @Param operation formData string true "resize, crop, convert or compress"
// @Param width formData int false "Target or crop width"
// @Param height formData int false "Target or crop height"
// @Param x formData int false "Crop origin x"
// @Param y formData int false "Crop origin y"
// @Param format formData string false "jpeg or png"
// @Param quality formData int false "JPEG quality 1..100"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /api/tools/image [post]
func (h *ToolHandler) ProcessImage(c *gin.Context) {
	fh, err := uploadedImage(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if fh.Size > h.maxImageBytes {
		utils.ErrorResponseWithError(c, errors.NewPayloadTooLargeError("image too large",
			fmt.Sprintf("at most %d bytes", h.maxImageBytes)))
		return
	}

	opts, err := imageOptions(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded image", "error", err)
		utils.ErrorResponseWithError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer f.Close()

	out, err := h.images.Process(f, opts)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("X-Image-Width", strconv.Itoa(out.Width))
	c.Header("X-Image-Height", strconv.Itoa(out.Height))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

func imageOptions(c *gin.Context) (imaging.Options, error) {
	opts := imaging.Options{
		Operation: c.PostForm("operation"),
		Format:    c.PostForm("format"),
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"x", &opts.X},
		{"y", &opts.Y},
		{"quality", &opts.Quality},
	}
	for _, f := range ints {
		raw := c.PostForm(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return imaging.Options{}, errors.NewValidationError("invalid "+f.name, raw)
		}
		*f.dst = n
	}
	return opts, nil
}
