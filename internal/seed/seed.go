// File: internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"service-market/internal/database"
	"service-market/internal/model"
	"service-market/internal/service"
	"service-market/internal/store"
	"service-market/internal/worker"
)

var (
	hashPassword  = service.HashPassword
	countAccounts = store.CountAccounts
	createAccount = store.CreateAccount
	updateAccount = store.UpdateAccount
)

const (
	adminPassword = "Admin123!"
	demoPassword  = "User123!"
	demoUsers     = 30
)

var firstNames = []string{
	"Алексей", "Мария", "Иван", "Екатерина", "Дмитрий", "Анна", "Сергей", "Ольга",
	"Никита", "Татьяна", "Павел", "Наталья", "Артём", "Юлия", "Владимир", "Ксения",
	"Михаил", "Алина", "Роман", "Виктория", "Григорий", "Дарья", "Егор", "Полина",
	"Константин", "София", "Андрей", "Елена", "Степан", "Ирина", "Максим", "Лидия",
}

var surnames = []string{
	"Иванов", "Петров", "Сидоров", "Кузнецов", "Смирнов", "Фёдоров", "Орлова", "Васильева",
}

var abouts = []string{
	"Работаю аккуратно и по договорённости, объясняю простым языком.",
	"Есть портфолио и отзывы, беру задачи разной сложности.",
	"Помогаю быстро и без лишней бюрократии.",
	"Подстраиваюсь под цель клиента, люблю понятные требования.",
	"Ориентируюсь на качество, сроки и прозрачную цену.",
}

var prices = []int{500, 800, 1000, 1500, 2000, 2500, 3000, 3500, 4000}

type demoAccount struct {
	login    string
	password string
	isAdmin  bool
	profile  service.ProfileValues
}

func demoSet() []demoAccount {
	adminAbout := "Админ сайта: управление анкетами пользователей."
	set := []demoAccount{{
		login:    model.RootAdminLogin,
		password: adminPassword,
		isAdmin:  true,
		profile: service.ProfileValues{
			Name:        "Администратор",
			ServiceType: "программист",
			Experience:  10,
			Price:       5000,
			About:       &adminAbout,
		},
	}}
	for i := 1; i <= demoUsers; i++ {
		about := abouts[rand.IntN(len(abouts))]
		set = append(set, demoAccount{
			login:    fmt.Sprintf("user%02d", i),
			password: demoPassword,
			profile: service.ProfileValues{
				Name:        firstNames[rand.IntN(len(firstNames))] + " " + surnames[rand.IntN(len(surnames))],
				ServiceType: service.ServiceTypes[rand.IntN(len(service.ServiceTypes))],
				Experience:  rand.IntN(26),
				Price:       prices[rand.IntN(len(prices))],
				About:       &about,
			},
		})
	}
	return set
}

// Run populates an empty database with the root admin and 30 demo
// providers. It is a no-op when any account already exists. Bcrypt
// dominates the cost, so the hashes are computed on the worker pool.
func Run(ctx context.Context, db database.DB, pool worker.Pool) error {
	existing, err := countAccounts(ctx, db)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if existing > 0 {
		return nil
	}

	set := demoSet()
	hashes := make([]string, len(set))
	hashErrs := make([]error, len(set))

	var wg sync.WaitGroup
	for i := range set {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			hashes[i], hashErrs[i] = hashPassword(set[i].password)
		})
	}
	wg.Wait()
	for _, err := range hashErrs {
		if err != nil {
			return fmt.Errorf("seed: hash: %w", err)
		}
	}

	for i, d := range set {
		account := &model.Account{
			Login:        d.login,
			PasswordHash: hashes[i],
			IsAdmin:      d.isAdmin,
		}
		if _, err := createAccount(ctx, db, account); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		account.Name = &set[i].profile.Name
		account.ServiceType = &set[i].profile.ServiceType
		account.ExperienceYears = &set[i].profile.Experience
		account.Price = &set[i].profile.Price
		account.About = set[i].profile.About
		if err := updateAccount(ctx, db, account); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
