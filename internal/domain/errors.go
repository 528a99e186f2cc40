package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	CodeAmbiguousResult      = "AMBIGUOUS_RESULT"
	CodeUnsupportedJoinShape = "UNSUPPORTED_JOIN_SHAPE"
	CodeStoreFailure         = "STORE_FAILURE"
	CodeInvalidQuery         = "INVALID_QUERY"
	CodeInvalidPageRequest   = "INVALID_PAGE_REQUEST"
	CodeNotFound             = "NOT_FOUND"
	CodeTeamExists           = "TEAM_EXISTS"
	CodeBadRequest           = "BAD_REQUEST"
)

var (
	// ErrAmbiguousResult - fetchOne нашел больше одной строки
	ErrAmbiguousResult = &DomainError{
		Code:    CodeAmbiguousResult,
		Message: "query returned more than one row",
	}

	// ErrUnsupportedJoinShape - outer join без объявленной связи
	ErrUnsupportedJoinShape = &DomainError{
		Code:    CodeUnsupportedJoinShape,
		Message: "outer join requires a declared relation",
	}

	// ErrStoreFailure - ошибка хранилища (соединение, ограничения)
	ErrStoreFailure = &DomainError{
		Code:    CodeStoreFailure,
		Message: "store failure",
	}

	// ErrInvalidQuery - запрос не прошел валидацию до выполнения
	ErrInvalidQuery = &DomainError{
		Code:    CodeInvalidQuery,
		Message: "invalid query",
	}

	// ErrInvalidPageRequest - некорректные offset/size
	ErrInvalidPageRequest = &DomainError{
		Code:    CodeInvalidPageRequest,
		Message: "invalid page request",
	}

	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "team_name already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewStoreFailure оборачивает ошибку драйвера без изменений
func NewStoreFailure(op string, err error) *DomainError {
	return &DomainError{
		Code:    CodeStoreFailure,
		Message: op,
		Err:     err,
	}
}

func NewInvalidQueryError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeInvalidQuery,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewUnsupportedJoinShapeError(target string) *DomainError {
	return &DomainError{
		Code:    CodeUnsupportedJoinShape,
		Message: fmt.Sprintf("left join on %s requires a declared relation", target),
	}
}

func NewInvalidPageRequestError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeInvalidPageRequest,
		Message: fmt.Sprintf(format, args...),
	}
}
