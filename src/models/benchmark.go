package models

// Industry is the closed set of supported industry identifiers.
type Industry string

const (
	IndustryManufacturing Industry = "Manufacturing"
	IndustryRetail        Industry = "Retail"
	IndustryServices      Industry = "Services"
	IndustryEcommerce     Industry = "Ecommerce"
	IndustryLogistics     Industry = "Logistics"
	IndustryAgriculture   Industry = "Agriculture"
)

// Benchmark holds the reference values a business of a given industry is
// measured against.
type Benchmark struct {
	CurrentRatio float64 `json:"current_ratio"`
	NetMargin    float64 `json:"net_margin"`
}

// benchmarks is fixed at build time. Values are reference "good" ratios per
// industry for small businesses.
var benchmarks = map[Industry]Benchmark{
	IndustryManufacturing: {CurrentRatio: 1.5, NetMargin: 0.10},
	IndustryRetail:        {CurrentRatio: 1.2, NetMargin: 0.05},
	IndustryServices:      {CurrentRatio: 2.0, NetMargin: 0.15},
	IndustryEcommerce:     {CurrentRatio: 1.3, NetMargin: 0.08},
	IndustryLogistics:     {CurrentRatio: 1.4, NetMargin: 0.07},
	IndustryAgriculture:   {CurrentRatio: 1.1, NetMargin: 0.12},
}

// BenchmarkFor looks up the benchmark for an industry identifier. Unknown
// industries fall back to the Services entry.
func BenchmarkFor(industry string) Benchmark {
	if b, ok := benchmarks[Industry(industry)]; ok {
		return b
	}
	return benchmarks[IndustryServices]
}

// KnownIndustry reports whether the identifier is part of the closed set.
func KnownIndustry(industry string) bool {
	_, ok := benchmarks[Industry(industry)]
	return ok
}
