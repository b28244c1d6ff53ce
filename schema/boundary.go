package schema

const (
	BoundaryCollection = "boundary"
)

type Geometry struct {
	Type        string      `bson:"type"`
	Coordinates interface{} `bson:"coordinates"`
}

type Boundary struct {
	Country  string   `bson:"country"`
	Region   string   `bson:"region"`
	Province string   `bson:"province"`
	City     string   `bson:"city"`
	Geometry Geometry `bson:"geometry"`
}
