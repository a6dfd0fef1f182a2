package main

import "github.com/mrlokans/locallibrary/internal/entities"

type sampleAuthor struct {
	key        string
	first      string
	family     string
	born, died string
}

type sampleCopy struct {
	imprint string
	status  entities.BookInstanceStatus
	due     string
}

type sampleBook struct {
	title   string
	summary string
	isbn    string
	author  string
	genres  []string
	copies  []sampleCopy
}

var sampleAuthors = []sampleAuthor{
	{key: "rothfuss", first: "Patrick", family: "Rothfuss", born: "1973-06-06"},
	{key: "bova", first: "Ben", family: "Bova", born: "1932-11-08"},
	{key: "asimov", first: "Isaac", family: "Asimov", born: "1920-01-02", died: "1992-04-06"},
	{key: "billings", first: "Bob", family: "Billings"},
	{key: "jones", first: "Jim", family: "Jones", born: "1971-12-16"},
}

var sampleGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}

var sampleBooks = []sampleBook{
	{
		title:   "The Name of the Wind (The Kingkiller Chronicle, #1)",
		summary: "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon. I have spent the night with Felurian and left with both my sanity and my life.",
		isbn:    "9781473211896",
		author:  "rothfuss",
		genres:  []string{"Fantasy"},
		copies: []sampleCopy{
			{imprint: "London Gollancz, 2014.", status: entities.BookInstanceStatusAvailable},
			{imprint: "Gollancz, 2011.", status: entities.BookInstanceStatusLoaned, due: "2026-11-30"},
		},
	},
	{
		title:   "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
		summary: "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile, into political intrigue, courtship, adventure, love and magic.",
		isbn:    "9788401352836",
		author:  "rothfuss",
		genres:  []string{"Fantasy"},
		copies: []sampleCopy{
			{imprint: "Gollancz, 2015.", status: entities.BookInstanceStatusMaintenance},
		},
	},
	{
		title:   "The Slow Regard of Silent Things (Kingkiller Chronicle)",
		summary: "Deep below the University, there is a dark place. Few people know of it: a broken web of ancient passageways and abandoned rooms.",
		isbn:    "9780756411336",
		author:  "rothfuss",
		genres:  []string{"Fantasy"},
	},
	{
		title:   "Apes and Angels",
		summary: "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
		isbn:    "9780765379528",
		author:  "bova",
		genres:  []string{"Science Fiction"},
		copies: []sampleCopy{
			{imprint: "New York Tom Doherty Associates, 2016.", status: entities.BookInstanceStatusAvailable},
			{imprint: "New York Tom Doherty Associates, 2016.", status: entities.BookInstanceStatusReserved, due: "2026-12-15"},
		},
	},
	{
		title:   "Death Wave",
		summary: "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.",
		isbn:    "9780765379504",
		author:  "bova",
		genres:  []string{"Science Fiction"},
		copies: []sampleCopy{
			{imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: entities.BookInstanceStatusAvailable},
		},
	},
	{
		title:   "Test Book 1",
		summary: "Summary of test book 1",
		isbn:    "ISBN111111",
		author:  "asimov",
		genres:  []string{"French Poetry", "Fantasy"},
		copies: []sampleCopy{
			{imprint: "Imprint XXX2", status: entities.BookInstanceStatusAvailable},
			{imprint: "Imprint XXX3", status: entities.BookInstanceStatusLoaned, due: "2026-12-01"},
		},
	},
	{
		title:   "Test Book 2",
		summary: "Summary of test book 2",
		isbn:    "ISBN222222",
		author:  "billings",
	},
}
