package utils

// MaskAPIKey masks a secret for display. Short values are fully masked so
// the output never narrows the search space.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
