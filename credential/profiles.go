package credential

// ProfileName labels a predefined policy tuple. Profiles are plain
// configuration data: strength tiers for graded cost, deployment profiles
// for common environments.
type ProfileName string

const (
	// ProfileLow is the cheapest digest-based tier, for rate-limited or
	// short-lived credentials.
	ProfileLow ProfileName = "low"
	// ProfileMedium is a mid-cost digest-based tier.
	ProfileMedium ProfileName = "medium"
	// ProfileHigh is the hardened PBKDF2 tier.
	ProfileHigh ProfileName = "high"
	// ProfileMaximum is the memory-hard Argon2id tier.
	ProfileMaximum ProfileName = "maximum"

	// ProfileWeb suits interactive web logins (PBKDF2, OWASP-level rounds).
	ProfileWeb ProfileName = "web"
	// ProfileMobile trades rounds for battery on low-power clients.
	ProfileMobile ProfileName = "mobile"
	// ProfileEnterprise is the memory-hard server-side profile.
	ProfileEnterprise ProfileName = "enterprise"
	// ProfileAPI suits high-entropy machine tokens, where a single digest
	// pass is sufficient and lookup latency matters.
	ProfileAPI ProfileName = "api"
)

var profiles = map[ProfileName]Options{
	ProfileLow:     {Algorithm: AlgorithmDigest256, Iterations: 1_000, SaltLength: 16, KeyLength: 64},
	ProfileMedium:  {Algorithm: AlgorithmDigest256, Iterations: 10_000, SaltLength: 32, KeyLength: 64},
	ProfileHigh:    {Algorithm: AlgorithmPBKDF2SHA256, Iterations: HardenedIterations, SaltLength: 32, KeyLength: 32},
	ProfileMaximum: {Algorithm: AlgorithmArgon2id, Iterations: 4, SaltLength: 32, KeyLength: 32, Memory: 128 * 1024, Threads: 4},

	ProfileWeb:        {Algorithm: AlgorithmPBKDF2SHA256, Iterations: HardenedIterations, SaltLength: 32, KeyLength: 32},
	ProfileMobile:     {Algorithm: AlgorithmPBKDF2SHA256, Iterations: 10_000, SaltLength: 16, KeyLength: 32},
	ProfileEnterprise: {Algorithm: AlgorithmArgon2id, Iterations: 3, SaltLength: 32, KeyLength: 32, Memory: DefaultArgon2Memory, Threads: DefaultArgon2Threads},
	ProfileAPI:        {Algorithm: AlgorithmDigest256, Iterations: 1, SaltLength: 32, KeyLength: 64},
}

// ProfileOptions returns the Options tuple for a named profile, or
// [ErrUnknownProfile].
func ProfileOptions(name ProfileName) (Options, error) {
	opts, ok := profiles[name]
	if !ok {
		return Options{}, ErrUnknownProfile
	}
	return opts, nil
}
