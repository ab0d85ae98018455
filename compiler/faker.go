package compiler

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// fakerTags lists every tag Draw understands, used by the compiler to
// validate a Datasource node at compile time without spending a draw.
var fakerTags = map[string]bool{
	"person.full_name": true, "person.first_name": true, "person.last_name": true,
	"internet.email": true, "internet.username": true, "internet.url": true, "internet.ipv4": true,
	"address.city": true, "address.street": true, "address.country": true, "address.zip": true,
	"company.name": true, "company.job_title": true,
	"phone.number": true, "identifier.uuid": true,
	"lorem.word": true, "lorem.sentence": true, "lorem.paragraph": true,
	"finance.credit_card": true, "color.name": true,
}

// KnownTag reports whether tag is registered.
func KnownTag(tag string) bool { return fakerTags[tag] }

// Faker wraps a seeded gofakeit instance behind a small tag registry.
// Grounded on other_examples/bff6c61b_sarathsp06-schemagen's Generator,
// which seeds gofakeit the same way: gofakeit.New(uint64(seed)).
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker returns a Faker seeded deterministically from seed.
func NewFaker(seed int64) *Faker {
	return &Faker{faker: gofakeit.New(uint64(seed))}
}

// Draw produces one token for tag, or an error if tag is not registered.
func (f *Faker) Draw(tag string) (string, error) {
	switch tag {
	case "person.full_name":
		return f.faker.Name(), nil
	case "person.first_name":
		return f.faker.FirstName(), nil
	case "person.last_name":
		return f.faker.LastName(), nil
	case "internet.email":
		return f.faker.Email(), nil
	case "internet.username":
		return f.faker.Username(), nil
	case "internet.url":
		return f.faker.URL(), nil
	case "internet.ipv4":
		return f.faker.IPv4Address(), nil
	case "address.city":
		return f.faker.City(), nil
	case "address.street":
		return f.faker.Street(), nil
	case "address.country":
		return f.faker.Country(), nil
	case "address.zip":
		return f.faker.Zip(), nil
	case "company.name":
		return f.faker.Company(), nil
	case "company.job_title":
		return f.faker.JobTitle(), nil
	case "phone.number":
		return f.faker.Phone(), nil
	case "identifier.uuid":
		return f.faker.UUID(), nil
	case "lorem.word":
		return f.faker.Word(), nil
	case "lorem.sentence":
		return f.faker.Sentence(8), nil
	case "lorem.paragraph":
		return f.faker.Paragraph(3, 5, 12, " "), nil
	case "finance.credit_card":
		return f.faker.CreditCardNumber(nil), nil
	case "color.name":
		return f.faker.Color(), nil
	default:
		return "", fmt.Errorf("compiler: unknown faker tag %q", tag)
	}
}
