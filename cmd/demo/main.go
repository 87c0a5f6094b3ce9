// Package main walks through the catalog components in sequence: user-owned
// products, admin capabilities, the repository and the service facade.
// It is a usage example, not part of the reusable contract.
package main

import (
	"fmt"
	"log"

	"github.com/nvoronin/gocatalog/internal/catalog/domain"
	"github.com/nvoronin/gocatalog/internal/catalog/service"
	"github.com/nvoronin/gocatalog/internal/catalog/store"
	"github.com/nvoronin/gocatalog/internal/catalog/user"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run() error {
	fmt.Println("--- Users and products ---")
	mona := user.NewUser("Mona", "mona@example.com")
	admin := user.NewAdmin("Ada", "ada@example.com")

	laptop, err := mona.AddProduct("Laptop", 1499.999)
	if err != nil {
		return err
	}
	watch, err := mona.AddProduct("Watch", 120)
	if err != nil {
		return err
	}
	fmt.Printf("%s owns %d products\n", mona.Name(), len(mona.Products()))
	for _, p := range mona.FindProductsByName("wat") {
		fmt.Printf("found by name: %s (%.2f)\n", p.Name(), p.Price())
	}

	if err := mona.UpdateProductPrice(laptop.ID(), 1399.99); err != nil {
		return err
	}
	fmt.Printf("laptop price is now %.2f\n", laptop.Price())

	fmt.Println("--- Admin capability ---")
	removed, err := admin.DeleteProductFromUser(mona, laptop.ID())
	if err != nil {
		return err
	}
	fmt.Printf("admin %s removed %q from %s\n", admin.Name(), removed.Name(), mona.Name())

	fmt.Println("--- Repository ---")
	repo := store.NewInMemoryStore()
	for _, p := range mona.Products() {
		if _, err := repo.Create(p); err != nil {
			return err
		}
	}
	fmt.Printf("repository holds %d products\n", len(repo.All()))
	if err := watch.SetPrice(99.90); err != nil {
		return err
	}
	if err := repo.Update(watch); err != nil {
		return err
	}
	if stored, ok := repo.ByID(watch.ID()); ok {
		fmt.Printf("updated %s to %.2f\n", stored.Name(), stored.Price())
	}
	fmt.Printf("deleted: %t, deleted again: %t\n", repo.Delete(watch.ID()), repo.Delete(watch.ID()))

	fmt.Println("--- Service facade ---")
	svc := service.NewService(store.NewInMemoryStore())
	created, err := svc.Create(service.ProductCreateDto{Name: "Watch", Price: 120, Owner: "Mona"})
	if err != nil {
		return err
	}
	discounted, err := svc.Discount(created.ID, 10)
	if err != nil {
		return err
	}
	fmt.Printf("%s after 10%% discount: %.2f\n", discounted.Name, discounted.Price)
	if err := svc.DeleteByID(created.ID); err != nil {
		return err
	}
	fmt.Printf("catalog size after removal: %d\n", len(svc.FindAll()))

	fmt.Println("--- Serialization ---")
	original, err := domain.NewProduct(domain.ProductParams{Name: "Notebook", Price: 3.50, Owner: "Mona"})
	if err != nil {
		return err
	}
	restored, err := domain.FromRecord(original.Record())
	if err != nil {
		return err
	}
	fmt.Printf("round-tripped %s owned by %s, created %s\n", restored.Name(), restored.Owner(), restored.CreatedAt())
	return nil
}
