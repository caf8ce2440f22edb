package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of the request body.
const hashHeader = "HashSHA256"

// withHashCheck verifies the HashSHA256 header of every request that has a
// body. It is a pass-through when the server has no hash key.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		sum := r.Header.Get(hashHeader)
		if sum == "" {
			log.Error().Str("func", "*Handler.withHashCheck").Msg("hash header is missing")
			utils.WriteError(w, ErrMissingHash.Error(), http.StatusBadRequest)
			return
		}

		if !utils.VerifyHash(body, sum) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
