package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	LunchCutover         string
	DinnerCutover        string
	SchedulerTimezone    string
	SchedulerTickSeconds string
}
