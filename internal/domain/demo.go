package domain

// DemoTreatments returns the fixed example dataset used for demos and tests.
func DemoTreatments() []Treatment {
	demo := []Treatment{
		{ID: 1, Name: "Control / Current practice", PVBenefits: 0, PVCosts: 0},
		{ID: 2, Name: "Improved fertiliser program", PVBenefits: 480000, PVCosts: 260000},
		{ID: 3, Name: "Precision irrigation upgrade", PVBenefits: 620000, PVCosts: 320000},
		{ID: 4, Name: "Drought-resilient seed and soil package", PVBenefits: 560000, PVCosts: 300000},
	}
	for i := range demo {
		demo[i].Apply(demo[i].Metrics())
	}
	return demo
}
