package availability

// Category категория решения движка, определяет HTTP-семантику на уровне хендлеров
type Category int

const (
	// CategoryOK бронирование возможно
	CategoryOK Category = iota
	// CategoryUnprocessable интервал вне рабочих часов или расписание не задано (422)
	CategoryUnprocessable
	// CategoryConflict интервал пересекается с существующим бронированием (409)
	CategoryConflict
)

// Сообщения решений - публичный контракт API, клиенты и тесты
// сверяются с ними дословно. Не менять без версионирования.
const (
	MsgClosedByException     = "The space is closed on this date due to an exception."
	MsgNoRulesDefined        = "No availability rules defined for this day."
	MsgOutsideSpecialHours   = "The reservation time is outside the special operating hours for this date."
	MsgOutsideOperatingHours = "The reservation time is outside the operating hours."
	MsgAlreadyBooked         = "The space is already booked for the selected time."
)

// Decision результат проверки доступности.
// Message заполняется только при Available == false.
type Decision struct {
	Available bool
	Message   string
	Category  Category
}

func available() *Decision {
	return &Decision{Available: true, Category: CategoryOK}
}

func notAvailable(message string, category Category) *Decision {
	return &Decision{Available: false, Message: message, Category: category}
}
