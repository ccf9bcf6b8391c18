package model

// Database represents report data sources
type Database struct {
	TableLinks []*TableLink `yaml:"TableLinks"`
	Tables     []*Table     `yaml:"Tables"`
}

// TableLink represents a join between two tables
type TableLink struct {
	JoinType          string `yaml:"JoinType"`
	SourceFields      Fields `yaml:"SourceFields"`
	DestinationFields Fields `yaml:"DestinationFields"`
}

// Table represents a database table, view or command
type Table struct {
	Alias          string     `yaml:"Alias"`
	ClassName      string     `yaml:"ClassName"`
	Name           string     `yaml:"Name"`
	ConnectionInfo []Property `yaml:"ConnectionInfo"` // Connection attributes in model order
	CommandText    string     `yaml:"CommandText"`    // Set for command tables only
	Fields         Fields     `yaml:"Fields"`
}

// Property represents a connection attribute
type Property struct {
	Name  string `yaml:"Name"`
	Value string `yaml:"Value"`
}
