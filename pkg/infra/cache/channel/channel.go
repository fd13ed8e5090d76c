package channel

type Channel string

const (
	AssessmentsChannel Channel = "trustassess:assessments"
	CorpusChannel      Channel = "trustassess:corpus"
)
