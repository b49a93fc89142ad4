package recurring_block

import "github.com/m04kA/SMC-ClinicScheduleService/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *dbmetrics.DB)
// Транзакция из контекста подставляется через dbmetrics.GetExecutor
type DBExecutor = dbmetrics.DBExecutor
