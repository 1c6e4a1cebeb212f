package ledger

import "fmt"

// Kind: koordinatör sınırında dışarı verilen hata sınıfları.
type Kind string

const (
	KindValidation        Kind = "validation"         // bozuk/aralık dışı girdi, mutasyon denenmedi
	KindInsufficientStock Kind = "insufficient_stock" // istenen adet mevcut stoktan fazla
	KindNotFound          Kind = "not_found"          // olmayan ürün veya satış kimliği
	KindStorage           Kind = "storage"            // altta yatan kalıcılık hatası
	KindPartialCommit     Kind = "partial_commit"     // çift yazmanın yarısı kaldı, telafi denendi
)

// Error: tüm ledger/koordinatör hataları tek tipte, tür + mesaj olarak döner.
type Error struct {
	Kind    Kind
	Message string
	Err     error // varsa altta yatan hata
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func validationErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func storageErr(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// KindOf: hatanın sınıfını döner; ledger.Error değilse KindStorage sayılır.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindStorage
}
