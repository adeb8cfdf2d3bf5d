package closure

import "github.com/agendalivre/booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
