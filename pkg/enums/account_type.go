package enums

// AccountType classifies a purchaser account.
type AccountType string

const (
	AccountTypeB2B      AccountType = "b2b"
	AccountTypeC2B      AccountType = "c2b"
	AccountTypeStandard AccountType = "standard"
)

var validAccountTypes = []AccountType{
	AccountTypeB2B,
	AccountTypeC2B,
	AccountTypeStandard,
}

// String implements fmt.Stringer.
func (t AccountType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known AccountType.
func (t AccountType) IsValid() bool {
	for _, candidate := range validAccountTypes {
		if candidate == t {
			return true
		}
	}
	return false
}
