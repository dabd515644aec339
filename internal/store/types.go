package store

type Driver string

const (
	DriverFlatFile Driver = "flatfile"
	DriverMemory   Driver = "memory"
)

type FileConfig struct {
	Dir          string
	StudentsFile string
	CoursesFile  string
	PassedFile   string
}
