package domain

// MemberSearchCondition - набор необязательных условий поиска.
// Пустые строки и nil означают "без фильтра".
type MemberSearchCondition struct {
	Username string
	TeamName string
	AgeGoe   *int
	AgeLoe   *int
}
