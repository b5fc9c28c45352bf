package i18n

// Package i18n resolves user-visible messages by error kind. Every string
// the API returns to a client goes through a catalog so handlers never
// hardcode copy.

const DefaultLocale = "es"

type Catalog struct {
	locale string
}

func New(locale string) *Catalog {
	if _, ok := messages[locale]; !ok {
		locale = DefaultLocale
	}
	return &Catalog{locale: locale}
}

func (c *Catalog) Locale() string {
	return c.locale
}

// T returns the message for key in the catalog's locale, falling back to the
// default locale and finally to the key itself.
func (c *Catalog) T(key string) string {
	if msg, ok := messages[c.locale][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

var messages = map[string]map[string]string{
	"es": {
		"welcome":             "¡Bienvenid@!",
		"unauthorized":        "No estás autorizado para acceder a este recurso.",
		"unauthenticated":     "No autenticado. Se requiere un token válido.",
		"invalid_credentials": "Las credenciales proporcionadas no son válidas.",
		"register_success":    "Usuario registrado correctamente.",
		"login_success":       "Inicio de sesión exitoso.",
		"logout_success":      "Sesión cerrada correctamente.",
		"logout_failed":       "No se pudo cerrar la sesión. Intentalo de nuevo.",
		"token_expired":       "El token ha expirado.",
		"token_invalid":       "El token no es válido.",
		"token_revoked":       "El token ha sido revocado.",
		"token_not_found":     "Token no encontrado.",
		"resource_deleted":    "Recurso eliminado correctamente.",
		"not_found":           "Recurso no encontrado.",
		"method_not_allowed":  "Método no permitido.",
	},
	"en": {
		"welcome":             "Welcome!",
		"unauthorized":        "You are not authorized to access this resource.",
		"unauthenticated":     "Unauthenticated. A valid token is required.",
		"invalid_credentials": "The provided credentials are not valid.",
		"register_success":    "User registered successfully.",
		"login_success":       "Login successful.",
		"logout_success":      "Session closed successfully.",
		"logout_failed":       "Could not close the session. Try again.",
		"token_expired":       "The token has expired.",
		"token_invalid":       "The token is not valid.",
		"token_revoked":       "The token has been revoked.",
		"token_not_found":     "Token not found.",
		"resource_deleted":    "Resource deleted successfully.",
		"not_found":           "Resource not found.",
		"method_not_allowed":  "Method not allowed.",
	},
}
