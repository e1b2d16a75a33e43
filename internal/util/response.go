package util

type Envelope map[string]any

// Error is the failure envelope: {"success": false, "message": ...}.
func Error(message string) Envelope {
	return Envelope{"success": false, "message": message}
}

// OK builds a success envelope. Extra fields are merged in as given.
func OK(message string, fields Envelope) Envelope {
	out := Envelope{"success": true}
	if message != "" {
		out["message"] = message
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func Data(key string, value any) Envelope {
	return Envelope{"success": true, key: value}
}
