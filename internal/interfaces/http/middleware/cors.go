package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/config"
)

// CORS builds the cross-origin middleware.  A "*" entry in AllowOrigins
// allows every origin.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Accept-Language", "Content-Type", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        cfg.MaxAge,
	}
	if cc.MaxAge <= 0 {
		cc.MaxAge = 12 * time.Hour
	}
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			cc.AllowAllOrigins = true
			break
		}
	}
	if !cc.AllowAllOrigins {
		cc.AllowOrigins = cfg.AllowOrigins
	}
	if !cc.AllowAllOrigins && len(cc.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
	}
	return cors.New(cc)
}

//Personal.AI order the ending
