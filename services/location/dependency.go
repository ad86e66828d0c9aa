package location

// EnvTest selects the substitute client.
const EnvTest = "test"

// Registry is the registration point for Client implementations. Live
// drives the platform; Test is handed out when running under test so that
// an accidental dependency on location services fails loudly.
type Registry struct {
	Live Client
	Test Client
}

// Resolve returns the client registered for env.
func (r Registry) Resolve(env string) Client {
	if env == EnvTest {
		return r.Test
	}
	return r.Live
}
