package dto

// Envelope is the single response shape of the API.
// tipo is 1 on success and 0 on failure; msj lists human readable messages
// and is empty on success.
type Envelope struct {
	Tipo  int      `json:"tipo" example:"1"`
	Datos any      `json:"datos"`
	Msj   []string `json:"msj"`
}

// Success wraps data in a success envelope
func Success(data any) Envelope {
	if data == nil {
		data = []any{}
	}
	return Envelope{Tipo: 1, Datos: data, Msj: []string{}}
}

// Failure builds a failure envelope carrying messages
func Failure(messages ...string) Envelope {
	if messages == nil {
		messages = []string{}
	}
	return Envelope{Tipo: 0, Datos: []any{}, Msj: messages}
}
