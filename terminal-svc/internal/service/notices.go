package service

import (
	"errors"

	"restopos/terminal-svc/internal/domain"
)

// Operator notifications, shown as-is on the screen.
const (
	NoticeOrderSent       = "Pesanan berhasil dikirim ke dapur"
	NoticeOrderSendFailed = "Gagal mengirim pesanan"
	NoticeItemRemoved     = "Item berhasil dihapus"
	NoticeItemRemoveFail  = "Gagal menghapus item"
	NoticeOrderClosed     = "Pesanan berhasil diselesaikan"
	NoticeOrderCloseFail  = "Gagal menyelesaikan pesanan"
	NoticeFoodCreated     = "Makanan berhasil ditambahkan"
	NoticeFoodUpdated     = "Makanan berhasil diperbarui"
	NoticeFoodDeleted     = "Makanan berhasil dihapus"
	NoticeFoodSaveFail    = "Gagal menyimpan data makanan"
	NoticeFoodDeleteFail  = "Gagal menghapus data makanan"
	NoticeTableUpdated    = "Status meja berhasil diperbarui"
	NoticeTableUpdateFail = "Gagal mengubah status meja"
	NoticeTableNotFound   = "Meja tidak ditemukan"
	NoticeOrderNotFound   = "Pesanan tidak ditemukan"
	NoticeFoodNotFound    = "Makanan tidak ditemukan"
	NoticeLoadFailed      = "Gagal memuat data"

	ConfirmRemoveItem = "Apakah Anda yakin ingin menghapus item ini dari pesanan?"
)

// OperationError carries the notification for a failed upstream call while
// keeping the cause reachable through errors.Is / errors.As.
type OperationError struct {
	Notice string
	Err    error
}

func (e *OperationError) Error() string {
	return e.Notice + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// failed attaches notice to err. Field errors are returned untouched so they
// still render next to their inputs.
func failed(notice string, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}
	return &OperationError{Notice: notice, Err: err}
}
