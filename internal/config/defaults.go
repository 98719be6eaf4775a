package config

// Default returns the built-in editor document: four parameters, two of each
// type, fully populated, and two starting colors.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Parameters: []ParameterSpec{
			{ID: 1, Name: "Назначение", Type: "string"},
			{ID: 2, Name: "Длина", Type: "string"},
			{ID: 3, Name: "Численное измерение", Type: "number"},
			{ID: 4, Name: "Длина", Type: "number"},
		},
		Initial: InitialSpec{
			Values: []ValueSpec{
				{ParamID: 1, Value: "повседневное"},
				{ParamID: 2, Value: "макси"},
				{ParamID: 3, Value: 1234},
				{ParamID: 4, Value: 21},
			},
			Colors: []string{"red", "blue"},
		},
	}
}
