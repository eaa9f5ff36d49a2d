package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/rraja/portfolio/backend/pkg/utils"
)

// Recover converts any handler panic into the uniform 500 envelope so no
// request ever terminates without a well-formed JSON response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[http] panic recovered: %v\n%s", rec, debug.Stack())
				utils.RespondInternalError(w, fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
