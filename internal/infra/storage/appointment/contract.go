package appointment

import "github.com/m04kA/SMC-ClinicScheduleService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
