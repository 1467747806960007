package webhook

// SignatureHeader is the header Linear signs deliveries with.
const SignatureHeader = "linear-signature"

// MaxBodyBytes caps how much of a delivery body is read. Real comment
// payloads are a few KB; anything near this limit is garbage.
const MaxBodyBytes = 1 << 20

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	Secret          string // Shared secret for signature verification
	RateLimitPerMin int    // Max requests per minute per source
}
