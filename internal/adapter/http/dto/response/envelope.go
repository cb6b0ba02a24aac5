package response

// Envelope is the `{"data": ...}` wrapper every successful response uses;
// the dashboard's REST client unwraps it uniformly.
type Envelope struct {
	Data any `json:"data"`
}

func Wrap(v any) Envelope {
	return Envelope{Data: v}
}
