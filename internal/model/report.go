package model

// SpaceCounts breaks the space pool down by state.
type SpaceCounts struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"disponibles"`
	Occupied    int64 `json:"ocupados"`
	Maintenance int64 `json:"mantenimiento"`
}

// DashboardMetrics holds the live counters shown on the dashboard.
type DashboardMetrics struct {
	Spaces         SpaceCounts `json:"espacios"`
	ActiveVehicles int64       `json:"vehiculosActivos"`
	IncomeToday    float64     `json:"ingresosHoy"`
	EntriesToday   int64       `json:"registrosHoy"`
	Occupancy      float64     `json:"ocupacion"` // percentage, one decimal
}

// FrequentVehicle ranks a vehicle by accumulated visits.
type FrequentVehicle struct {
	Plate       string  `json:"placa"`
	Vehicle     string  `json:"vehiculo"`
	Visits      int64   `json:"visitas"`
	TotalSpent  float64 `json:"totalGastado,omitempty"`
	AvgDuration float64 `json:"tiempoPromedio,omitempty"` // minutes
}

// ActiveEntry is one currently-parked vehicle on the dashboard.
type ActiveEntry struct {
	ID           string `json:"id"`
	Plate        string `json:"placa"`
	Vehicle      string `json:"vehiculo"`
	Color        string `json:"color"`
	Space        string `json:"espacio"`
	State        string `json:"estado"`
	EntryTime    string `json:"horaEntrada"`
	RegisteredBy string `json:"registradoPor"`
}

// DashboardStats is the full /dashboard/estadisticas payload.
type DashboardStats struct {
	Metrics          DashboardMetrics  `json:"metricas"`
	FrequentVehicles []FrequentVehicle `json:"vehiculosFrecuentes"`
	LatestEntries    []ActiveEntry     `json:"ultimosRegistros"`
}

// SearchResult is one quick-search hit by plate substring.
type SearchResult struct {
	Kind        string `json:"tipo"`
	ID          string `json:"id"`
	Plate       string `json:"placa"`
	Description string `json:"descripcion"`
	Parked      bool   `json:"estaEnParqueo"`
}

// DailyIncome aggregates finished sessions by exit date.
type DailyIncome struct {
	Date   string  `json:"fecha"`
	Income float64 `json:"ingresos"`
	Exits  int64   `json:"salidas"`
}

// PeakHour ranks an entry hour by volume.
type PeakHour struct {
	Hour    string `json:"hora"`
	Entries int64  `json:"entradas"`
}

// ReportPeriod bounds a report window.
type ReportPeriod struct {
	DateStart string `json:"fechaInicio"`
	DateEnd   string `json:"fechaFin"`
	Days      int    `json:"dias,omitempty"`
}

// IncomeTotals summarises a whole income-report window.
type IncomeTotals struct {
	TotalIncome float64      `json:"ingresosTotales"`
	TotalExits  int64        `json:"totalSalidas"`
	AvgPerExit  float64      `json:"promedioPorSalida"`
	BestDay     *DailyIncome `json:"mejorDia"`
}

// IncomeReport is the /reportes/ingresos payload.
type IncomeReport struct {
	Period           ReportPeriod      `json:"periodo"`
	Totals           IncomeTotals      `json:"estadisticas"`
	DailyIncome      []DailyIncome     `json:"ingresosPorDia"`
	FrequentVehicles []FrequentVehicle `json:"vehiculosFrecuentes"`
	PeakHours        []PeakHour        `json:"horasPico"`
}

// HourlyOccupancy is one hour bucket of the occupancy report.
type HourlyOccupancy struct {
	Hour        string  `json:"hora"`
	Entries     int64   `json:"entradas"`
	AvgDuration float64 `json:"tiempoPromedio"` // minutes, finished records only
}

// SpaceUsage ranks a space by entry count.
type SpaceUsage struct {
	Space string `json:"espacio"`
	Uses  int64  `json:"uso"`
}

// OccupancyReport is the /reportes/ocupacion payload.
type OccupancyReport struct {
	Date      string            `json:"fecha"`
	ByHour    []HourlyOccupancy `json:"ocupacionPorHora"`
	TopSpaces []SpaceUsage      `json:"espaciosUtilizados"`
}

// MakeCount ranks a vehicle make across the whole fleet.
type MakeCount struct {
	Make  string `json:"marca"`
	Count int64  `json:"cantidad"`
}

// VehicleRanking is one row of the vehicle report.
type VehicleRanking struct {
	Plate       string  `json:"placa"`
	Vehicle     string  `json:"vehiculo"`
	Color       string  `json:"color"`
	Visits      int64   `json:"visitas"`
	TotalSpent  float64 `json:"totalGastado"`
	AvgDuration float64 `json:"tiempoPromedio"` // minutes
}

// VehicleReport is the /reportes/vehiculos payload.
type VehicleReport struct {
	Period      ReportPeriod     `json:"periodo"`
	TopVehicles []VehicleRanking `json:"vehiculosTop"`
	CommonMakes []MakeCount      `json:"marcasComunes"`
}
