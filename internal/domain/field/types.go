package field

type SportType string

const (
	SportFootball   SportType = "football"
	SportBasketball SportType = "basketball"
	SportTennis     SportType = "tennis"
	SportPadel      SportType = "padel"
)

func (s SportType) String() string {
	return string(s)
}

func (s SportType) IsValid() bool {
	switch s {
	case SportFootball, SportBasketball, SportTennis, SportPadel:
		return true
	default:
		return false
	}
}

func NewSportType(s string) (SportType, error) {
	st := SportType(s)
	if !st.IsValid() {
		return "", ErrInvalidSportType
	}
	return st, nil
}
