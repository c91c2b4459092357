package static

// Session is a fixed wallet connection for server-side deployments where
// the account comes from configuration rather than a browser wallet.
type Session struct {
	Addr string
}

func (s Session) Address() (string, bool) {
	return s.Addr, s.Addr != ""
}
