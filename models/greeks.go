package models

// Greeks is a point-in-time snapshot of an option's derived outputs.
type Greeks struct {
	Type  OptionType `json:"type" csv:"type"`
	D1    float64    `json:"d1" csv:"d1"`
	D2    float64    `json:"d2" csv:"d2"`
	Price float64    `json:"price" csv:"price"`
	Delta float64    `json:"delta" csv:"delta"`
	Gamma float64    `json:"gamma" csv:"gamma"`
	Vega  float64    `json:"vega" csv:"vega"`
	Theta float64    `json:"theta" csv:"theta"`
}

func (o *Option) Greeks() Greeks {
	return Greeks{
		Type:  o.optionType,
		D1:    o.D1(),
		D2:    o.D2(),
		Price: o.Price(),
		Delta: o.Delta(),
		Gamma: o.Gamma(),
		Vega:  o.Vega(),
		Theta: o.Theta(),
	}
}
