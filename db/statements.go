package db

type StatementSet interface {
	Init() []Mutation
	List() Query
	Get(id int64) Query
	Insert(title, author string, rating float64) Mutation
	UpdateRating(id int64, rating float64) Mutation
	Delete(id int64) Mutation
	Count() Query
}
