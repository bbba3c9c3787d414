package model

import "encoding/json"

type valuesEnvelope struct {
	Values []float64 `json:"values"`
}

func marshalValues(values []float64) ([]byte, error) {
	return json.Marshal(valuesEnvelope{Values: values})
}

func unmarshalValues(data []byte) ([]float64, error) {
	var env valuesEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env.Values, nil
}
