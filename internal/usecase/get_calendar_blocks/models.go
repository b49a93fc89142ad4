package get_calendar_blocks

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
)

// Request модель запроса виртуальных блоков за период
type Request struct {
	UserID uuid.UUID // владелец агенды
	From   time.Time // первая видимая дата (включительно)
	To     time.Time // последняя видимая дата (включительно)
}

// Response модель ответа с виртуальными блоками
type Response struct {
	From   time.Time             // первая дата периода (полночь в таймзоне клиники)
	To     time.Time             // последняя дата периода
	Blocks []domain.VirtualBlock // сгруппированы по датам, внутри даты в порядке правил
}
