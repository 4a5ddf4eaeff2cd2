package model

// AccountType is the wallet account type reported by the payment service.
// Codes are part of the wire contract: never rename or renumber them.
type AccountType string

const (
	AccountTypePersonal     AccountType = "personal"
	AccountTypeProfessional AccountType = "professional"
	AccountTypeUnknown      AccountType = "unknown"
)

var accountTypes = []AccountType{
	AccountTypePersonal,
	AccountTypeProfessional,
	AccountTypeUnknown,
}

var accountTypesByCode = indexAccountTypes(accountTypes)

func indexAccountTypes(types []AccountType) map[string]AccountType {
	byCode := make(map[string]AccountType, len(types))
	for _, t := range types {
		if _, ok := byCode[t.Code()]; ok {
			panic("duplicate account type code: " + t.Code())
		}
		byCode[t.Code()] = t
	}
	return byCode
}

// Code returns the wire code bound to the account type.
func (t AccountType) Code() string {
	return string(t)
}

// AccountTypes returns every known account type in declaration order.
func AccountTypes() []AccountType {
	out := make([]AccountType, len(accountTypes))
	copy(out, accountTypes)
	return out
}

// ParseAccountType maps a wire code to an AccountType. Matching is exact and
// case-sensitive; anything unrecognized, including "", yields AccountTypeUnknown.
func ParseAccountType(code string) AccountType {
	if t, ok := accountTypesByCode[code]; ok {
		return t
	}
	return AccountTypeUnknown
}

// ParseAccountTypePtr is ParseAccountType for optional codes. nil yields
// AccountTypeUnknown.
func ParseAccountTypePtr(code *string) AccountType {
	if code == nil {
		return AccountTypeUnknown
	}
	return ParseAccountType(*code)
}
