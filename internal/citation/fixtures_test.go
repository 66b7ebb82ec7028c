package citation

import "github.com/nakachan-ing/bibfmt/internal/model"

func bookFixture() model.Book {
	return model.Book{
		Authors:         "Иванов И.М., Петров С.Н.",
		Title:           "Наука как искусство",
		Edition:         "3-е",
		City:            "СПб.",
		PublishingHouse: "Просвещение",
		Year:            2020,
		Pages:           999,
		DOI:             "10.2196/16504",
	}
}

func internetResourceFixture() model.InternetResource {
	return model.InternetResource{
		Article:    "Наука как искусство",
		Website:    "Ведомости",
		Link:       "https://www.vedomosti.ru",
		AccessDate: "01.01.2021",
	}
}

func articlesCollectionFixture() model.ArticlesCollection {
	return model.ArticlesCollection{
		Authors:         "Иванов И.М., Петров С.Н.",
		ArticleTitle:    "Наука как искусство",
		CollectionTitle: "Сборник научных трудов",
		City:            "СПб.",
		PublishingHouse: "АСТ",
		Year:            2020,
		Pages:           "25-30",
	}
}

func articleFixture() model.Article {
	return model.Article{
		Authors:       "Иванов И.М., Петров С.Н.",
		ArticleTitle:  "Наука как искусство",
		JournalTitle:  "Образование и наука",
		Year:          2020,
		JournalNumber: intPtr(10),
		Pages:         "25-30",
		DOI:           "10.2196/16504",
	}
}

func dissertationFixture() model.Dissertation {
	return model.Dissertation{
		Authors:           "Иванов И.М.",
		DissertationTitle: "Наука как искусство",
		Degree:            "д-р.",
		ScienceBranch:     "экон.",
		SpecialtyCode:     "01.01.01",
		City:              "СПб.",
		Year:              2020,
		Pages:             199,
	}
}

// fixtureRecords returns one record of every kind in a fixed input order.
func fixtureRecords() []model.Record {
	return []model.Record{
		bookFixture(),
		internetResourceFixture(),
		articlesCollectionFixture(),
		articleFixture(),
		dissertationFixture(),
	}
}

func intPtr(n int) *int { return &n }
