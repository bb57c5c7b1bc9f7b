package structs

type MetricConst int

const (
	MetricOrderFilled MetricConst = iota
	MetricOrderRejected
	MetricOrderCancelled
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricOrderFilled:
		return "orders_filled_total"
	case MetricOrderRejected:
		return "orders_rejected_total"
	case MetricOrderCancelled:
		return "orders_cancelled_total"
	}

	return "orders_unknown_total"
}
