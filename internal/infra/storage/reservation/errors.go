package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrOverlapConflict возвращается, когда вставка/обновление нарушает
	// exclusion constraint на пересечение интервалов (SQLSTATE 23P01).
	// Constraint в БД - авторитетная защита от двойного бронирования,
	// проверка движка доступности - только pre-check для сообщений об ошибках
	ErrOverlapConflict = errors.New("reservation.repository: overlapping reservation exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
