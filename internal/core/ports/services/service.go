package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Session     SessionSvcFacade
	Metrics     MetricsSvcFacade
}
