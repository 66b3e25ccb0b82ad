package dashboard

// WorkHoursPerYear converts an hourly wage into a yearly estimate.
const WorkHoursPerYear = 2080

const (
	AxisPerYear   = "perYearAxis"
	AxisTotalJobs = "totalJobsAxis"
	AxisJobGrowth = "jobGrowthAxis"
)

type Dataset struct {
	YAxisID     string    `json:"yAxisID"`
	Data        []float64 `json:"data"`
	BorderColor string    `json:"borderColor"`
}

type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// YearlyPay returns pay per year, or the hourly rate scaled to a work year
// when no yearly figure is recorded.
func (o Occupation) YearlyPay() float64 {
	if o.PayPerYear != nil {
		return *o.PayPerYear
	}
	if o.PayPerHour != nil {
		return *o.PayPerHour * WorkHoursPerYear
	}
	return 0
}

// BuildChart lays out one label and three series points per occupation.
func BuildChart(occs []Occupation) Chart {
	c := Chart{Labels: make([]string, 0, len(occs))}
	perYear := make([]float64, 0, len(occs))
	totalJobs := make([]float64, 0, len(occs))
	jobGrowth := make([]float64, 0, len(occs))

	for _, o := range occs {
		c.Labels = append(c.Labels, o.Name)
		perYear = append(perYear, o.YearlyPay())
		totalJobs = append(totalJobs, o.TotalJobs)
		jobGrowth = append(jobGrowth, o.JobGrowth)
	}

	c.Datasets = []Dataset{
		{YAxisID: AxisPerYear, Data: perYear, BorderColor: "#5ed7a3"},
		{YAxisID: AxisTotalJobs, Data: totalJobs, BorderColor: "#e96073"},
		{YAxisID: AxisJobGrowth, Data: jobGrowth, BorderColor: "#f08226"},
	}
	return c
}
