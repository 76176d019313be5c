package user

type ServiceGroup struct {
	LlmService       ILlmService
	RecommendService IRecommendService
	AnalysisService  IAnalysisService
	Validator        IValidator
}

func NewServiceGroup() ServiceGroup {
	llmService := NewLlmService()
	return ServiceGroup{
		LlmService:       llmService,
		RecommendService: NewRecommendService(llmService),
		AnalysisService:  NewAnalysisService(llmService),
		Validator:        &Validator{},
	}
}
