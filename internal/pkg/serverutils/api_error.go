package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError is a caller-facing error with a stable HTTP status and a German
// message. The error middleware renders it as {"error": message}.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

var (
	ErrUnauthenticated     = NewApiError(fiber.StatusUnauthorized, "Authentifizierung erforderlich")
	ErrInvalidCredential   = NewApiError(fiber.StatusUnauthorized, "Ungültige Authentifizierung")
	ErrMalformedInput      = NewApiError(fiber.StatusBadRequest, "Ungültiges Nachrichtenformat")
	ErrTooManyMessages     = NewApiError(fiber.StatusBadRequest, "Zu viele Nachrichten (max 50)")
	ErrInvalidRole         = NewApiError(fiber.StatusBadRequest, "Ungültige Nachrichtenrolle")
	ErrInvalidContent      = NewApiError(fiber.StatusBadRequest, "Ungültiger Nachrichteninhalt")
	ErrContentTooLong      = NewApiError(fiber.StatusBadRequest, "Nachricht zu lang (max 4000 Zeichen)")
	ErrRateLimited         = NewApiError(fiber.StatusTooManyRequests, "Rate limit erreicht. Bitte versuche es später erneut.")
	ErrQuotaExhausted      = NewApiError(fiber.StatusPaymentRequired, "Keine Credits mehr. Bitte lade dein Konto auf.")
	ErrUpstreamUnavailable = NewApiError(fiber.StatusInternalServerError, "AI-Dienst vorübergehend nicht verfügbar.")
	ErrNotFound            = NewApiError(fiber.StatusNotFound, "Eintrag nicht gefunden")
)

const FallbackErrorMessage = "Unbekannter Fehler"
