package presenter

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	presenterport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/presenter"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var errorTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const errorTemplateName = "payment_error"

// Config holds the shop URLs the presenter sends shoppers to
type Config struct {
	ConfirmationURL string
	ShopURL         string
	ModuleName      string
}

// Factory builds a presenter bound to one gin request
type Factory struct {
	config Config
	logger coreport.Logger
}

// NewFactory creates a presenter factory
func NewFactory(config Config, logger coreport.Logger) *Factory {
	if config.ShopURL == "" {
		config.ShopURL = "/"
	}
	return &Factory{config: config, logger: logger}
}

// For returns a presenter that writes to c
func (f *Factory) For(c *gin.Context) presenterport.OutcomePresenter {
	return &GinPresenter{c: c, config: f.config, logger: f.logger}
}

// PresentGenericError renders the exception page. Used when no presenter was reached.
func (f *Factory) PresentGenericError(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		f.For(c).PresentError(c.Request.Context(), message, nil)
	}
}

// GinPresenter redirects successful payments to the order confirmation page
// and renders an HTML page for everything else. Only the first call writes.
type GinPresenter struct {
	c       *gin.Context
	config  Config
	logger  coreport.Logger
	written bool
}

type errorPage struct {
	Message   string
	Code      int
	HasCode   bool
	RequestID string
	RetryURL  string
}

// PresentSuccess redirects to the confirmation page with the cart, order and customer key
func (p *GinPresenter) PresentSuccess(ctx context.Context, cart *entity.Cart) {
	if !p.claim() {
		return
	}

	query := url.Values{}
	if cart != nil {
		query.Set("id_cart", strconv.FormatInt(cart.ID, 10))
		if cart.OrderID != nil {
			query.Set("id_order", strconv.FormatInt(*cart.OrderID, 10))
		}
		if cart.Customer != nil {
			query.Set("key", cart.Customer.SecureKey)
		}
	}
	if p.config.ModuleName != "" {
		query.Set("module", p.config.ModuleName)
	}

	target := p.config.ConfirmationURL
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	p.c.Redirect(http.StatusFound, target)
}

// PresentError renders the error page with the shopper message
func (p *GinPresenter) PresentError(ctx context.Context, message string, code *int) {
	if !p.claim() {
		return
	}

	page := errorPage{
		Message:   message,
		RequestID: middleware.GetRequestID(p.c),
		RetryURL:  p.config.ShopURL,
	}
	if code != nil {
		page.Code = *code
		page.HasCode = true
	}

	p.c.Render(http.StatusOK, render.HTML{
		Template: errorTemplate,
		Name:     errorTemplateName,
		Data:     page,
	})
}

func (p *GinPresenter) claim() bool {
	if p.written || p.c.Writer.Written() {
		p.logger.Warn("Outcome already presented, ignoring", map[string]any{
			"path":       p.c.Request.URL.Path,
			"request_id": middleware.GetRequestID(p.c),
		})
		return false
	}
	p.written = true
	return true
}
