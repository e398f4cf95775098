package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carmommy/internal/handler/api"
	"carmommy/internal/handler/middleware"
	"carmommy/internal/handler/webhook"
	"carmommy/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	listingHandler *api.ListingHandler,
	paymentHandler *api.PaymentHandler,
	callHandler *api.CallHandler,
	voiceHandler *api.VoiceHandler,
	videoHandler *api.VideoHandler,
	emailHandler *api.EmailHandler,
	elevenLabsHandler *webhook.ElevenLabsHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, listingHandler, paymentHandler, callHandler, voiceHandler, videoHandler, emailHandler, elevenLabsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	listingHandler *api.ListingHandler,
	paymentHandler *api.PaymentHandler,
	callHandler *api.CallHandler,
	voiceHandler *api.VoiceHandler,
	videoHandler *api.VideoHandler,
	emailHandler *api.EmailHandler,
	elevenLabsHandler *webhook.ElevenLabsHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Vendor-facing endpoints live at the root: ElevenLabs tool calls and
	// webhook deliveries are configured with these exact paths.
	addRoutes(engine.Group(""), []route{
		{Method: http.MethodPost, Path: "/elevenlabs/post-call", Handler: elevenLabsHandler.PostCall},
		{Method: http.MethodPost, Path: "/elevenlabs/get-competitive-deals", Handler: elevenLabsHandler.CompetitiveDeals},
		{Method: http.MethodPost, Path: "/quotes", Handler: elevenLabsHandler.ConfirmQuote},
	})

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/listings", Handler: listingHandler.Search},
			{Method: http.MethodPost, Path: "/payments/verify", Handler: paymentHandler.Verify},
			{Method: http.MethodGet, Path: "/deals", Handler: callHandler.CompetitiveDeals},
			{Method: http.MethodPost, Path: "/emails/parse", Handler: emailHandler.ParseEmail},
		})

		calls := apiGroup.Group("/calls")
		{
			addRoutes(calls, []route{
				{Method: http.MethodPost, Path: "", Handler: callHandler.RequestCall},
				{Method: http.MethodGet, Path: "/existing", Handler: callHandler.CheckExistingCall},
			})
		}

		voices := apiGroup.Group("/voices")
		{
			addRoutes(voices, []route{
				{Method: http.MethodGet, Path: "", Handler: voiceHandler.ListVoices},
				{Method: http.MethodPost, Path: "", Handler: voiceHandler.CreateVoice},
			})
		}

		videos := apiGroup.Group("/videos")
		{
			addRoutes(videos, []route{
				{Method: http.MethodPost, Path: "", Handler: videoHandler.CreateVideo},
				{Method: http.MethodGet, Path: "/:vin", Handler: videoHandler.GetVideo},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
