package main

import (
	"accounts/config"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/usecase"
	"accounts/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(warmUp),
	).Run()
}

// warmUp forces the full dependency graph to build at startup. The postgres
// lifecycle hook pings the database, so a bad configuration fails fast instead
// of on the first repository call.
func warmUp(_ usecase.AccountUsecase, _ usecase.AuthUsecase) {}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewUserRepository,
		postgres.NewWorkspaceRepository,
		postgres.NewOrganizationRepository,
		postgres.NewMembershipRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		newBcryptHasher,
		auth.NewRandomTokenGenerator,
	)
}

// newBcryptHasher reads the cost from config; a missing auth section falls
// back to the bcrypt default inside the constructor.
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAccountService,
		impl.NewAuthService,
	)
}
