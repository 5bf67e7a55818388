package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medicino/medicino/internal/adapters/database"
	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/infrastructure/clients/postgres"
	"github.com/medicino/medicino/internal/infrastructure/observability"
	"github.com/medicino/medicino/pkg/config"
)

// Creates the schema and loads the reference catalog of conditions and
// medicines. Safe to run repeatedly: existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	observability.InitLogger("medicino-seed", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				diagnosis_history,
				conditions,
				medicines,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	if err := createSchema(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}
	log.Info().Msg("schema ready")

	conditionRepo := database.NewConditionAdapter(pgClient)
	medicineRepo := database.NewMedicineAdapter(pgClient)
	now := time.Now().UTC()

	seeded := 0
	for _, c := range seedConditions() {
		condition := c
		condition.IsActive = true
		condition.CreatedAt = now
		if err := conditionRepo.Create(ctx, &condition); err != nil {
			log.Warn().Str("condition", condition.Name).Err(err).Msg("skipping condition")
			continue
		}
		seeded++
	}
	log.Info().Int("count", seeded).Msg("conditions seeded")

	seeded = 0
	for _, m := range seedMedicines() {
		medicine := m
		medicine.IsActive = true
		medicine.CreatedAt = now
		if err := medicineRepo.Create(ctx, &medicine); err != nil {
			log.Warn().Str("medicine", medicine.Name).Err(err).Msg("skipping medicine")
			continue
		}
		seeded++
	}
	log.Info().Int("count", seeded).Msg("medicines seeded")
}

func createSchema(ctx context.Context, client *postgres.Client) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS conditions (
			id BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			symptoms TEXT NOT NULL,
			ayurvedic_remedy TEXT NOT NULL DEFAULT '',
			modern_treatment TEXT NOT NULL DEFAULT '',
			precautions TEXT NOT NULL DEFAULT '',
			severity_level TEXT NOT NULL DEFAULT 'unknown',
			category TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS medicines (
			id BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			dosage TEXT NOT NULL DEFAULT '',
			side_effects TEXT NOT NULL DEFAULT '',
			contraindications TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2),
			category TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS diagnosis_history (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			symptoms TEXT NOT NULL,
			diagnosed_condition TEXT NOT NULL DEFAULT '',
			ayurvedic_remedy TEXT NOT NULL DEFAULT '',
			medicine_suggestion TEXT NOT NULL DEFAULT '',
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
			severity_level TEXT NOT NULL DEFAULT 'unknown',
			user_feedback TEXT,
			is_accurate BOOLEAN,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_diagnosis_history_user
			ON diagnosis_history (user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_conditions_category
			ON conditions (category) WHERE is_active`,
		`CREATE INDEX IF NOT EXISTS idx_medicines_category
			ON medicines (category) WHERE is_active`,
	}

	for _, stmt := range statements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func price(v float64) *float64 {
	return &v
}

func seedConditions() []entities.Condition {
	return []entities.Condition{
		{
			Name:            "Common Cold",
			Symptoms:        "runny nose, sneezing, sore throat, cough, congestion, mild fever, fatigue",
			AyurvedicRemedy: "Tulsi tea, ginger tea, honey with warm water, steam inhalation with eucalyptus oil",
			ModernTreatment: "Paracetamol, Vitamin C supplements, Decongestants",
			SeverityLevel:   entities.SeverityMild,
			Description:     "A viral infection affecting the upper respiratory tract",
			Precautions:     "Rest, stay hydrated, avoid cold foods, maintain good hygiene",
			Category:        "Respiratory",
		},
		{
			Name:            "Influenza",
			Symptoms:        "high fever, body aches, chills, headache, sore throat, dry cough, fatigue",
			AyurvedicRemedy: "Ginger-turmeric tea, licorice root decoction, warm milk with saffron",
			ModernTreatment: "Oseltamivir, Ibuprofen, Antihistamines",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A contagious respiratory illness caused by influenza viruses",
			Precautions:     "Get vaccinated, rest, avoid contact with others, stay hydrated",
			Category:        "Respiratory",
		},
		{
			Name:            "Bronchitis",
			Symptoms:        "persistent cough, mucus production, chest discomfort, fatigue, shortness of breath",
			AyurvedicRemedy: "Tulsi steam inhalation, licorice root tea, ginger-honey mix",
			ModernTreatment: "Cough suppressants, Bronchodilators, Antibiotics if bacterial",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Inflammation of the bronchial tubes",
			Precautions:     "Avoid smoking, stay hydrated, rest, use a humidifier",
			Category:        "Respiratory",
		},
		{
			Name:            "Pneumonia",
			Symptoms:        "high fever, severe cough, chest pain, difficulty breathing, fatigue, loss of appetite",
			AyurvedicRemedy: "Kanakasava, Vasavaleha, Sitopaladi churna",
			ModernTreatment: "Antibiotics, Oxygen therapy, Hospitalization if severe",
			SeverityLevel:   entities.SeveritySevere,
			Description:     "Serious lung infection requiring immediate medical attention",
			Precautions:     "Seek immediate medical care, complete antibiotic course, rest",
			Category:        "Respiratory",
		},
		{
			Name:            "Asthma",
			Symptoms:        "wheezing, shortness of breath, chest tightness, coughing",
			AyurvedicRemedy: "Tulsi tea, licorice root decoction, steam inhalation",
			ModernTreatment: "Inhaled corticosteroids, Bronchodilators, Leukotriene modifiers",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A chronic respiratory condition causing airway inflammation",
			Precautions:     "Avoid triggers, use inhalers, maintain clean environment",
			Category:        "Respiratory",
		},
		{
			Name:            "Sinusitis",
			Symptoms:        "facial pain, nasal congestion, headache, thick nasal discharge, reduced smell",
			AyurvedicRemedy: "Steam inhalation with eucalyptus, neti pot, turmeric milk",
			ModernTreatment: "Decongestants, Nasal corticosteroids, Antibiotics if bacterial",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Inflammation of the sinuses",
			Precautions:     "Stay hydrated, avoid allergens, use saline nasal sprays",
			Category:        "Respiratory",
		},
		{
			Name:            "Allergic Rhinitis",
			Symptoms:        "sneezing, itchy nose, watery eyes, nasal congestion, postnasal drip",
			AyurvedicRemedy: "Neti pot with saline, turmeric milk, licorice tea",
			ModernTreatment: "Antihistamines, Nasal corticosteroids, Decongestants",
			SeverityLevel:   entities.SeverityMild,
			Description:     "An allergic reaction to airborne allergens like pollen or dust",
			Precautions:     "Avoid allergens, use air purifiers, keep windows closed during pollen season",
			Category:        "Respiratory",
		},
		{
			Name:            "Gastritis",
			Symptoms:        "stomach pain, bloating, nausea, vomiting, loss of appetite",
			AyurvedicRemedy: "Aloe vera juice, fennel tea, licorice root, ginger tea",
			ModernTreatment: "Antacids, Proton pump inhibitors, H2 blockers",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Inflammation of the stomach lining",
			Precautions:     "Eat smaller meals, avoid alcohol, reduce stress, avoid irritant foods",
			Category:        "Digestive",
		},
		{
			Name:            "Food Poisoning",
			Symptoms:        "nausea, vomiting, diarrhea, abdominal pain, fever, dehydration",
			AyurvedicRemedy: "Ginger tea, cumin water, coriander seeds, ORS solution",
			ModernTreatment: "Oral rehydration solution, Anti-emetics, Anti-diarrheals",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Illness caused by consuming contaminated food or water",
			Precautions:     "Stay hydrated, rest, avoid solid foods initially, seek medical care if severe",
			Category:        "Digestive",
		},
		{
			Name:            "Irritable Bowel Syndrome",
			Symptoms:        "abdominal pain, bloating, diarrhea, constipation, gas",
			AyurvedicRemedy: "Triphala churna, isabgol, fennel tea, jeera water",
			ModernTreatment: "Fiber supplements, Antispasmodics, Probiotics",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A functional gastrointestinal disorder affecting the large intestine",
			Precautions:     "Identify trigger foods, manage stress, regular exercise, fiber-rich diet",
			Category:        "Digestive",
		},
		{
			Name:            "Gastroesophageal Reflux Disease",
			Symptoms:        "heartburn, regurgitation, chest pain, difficulty swallowing",
			AyurvedicRemedy: "Aloe vera juice, fennel tea, avoid spicy foods",
			ModernTreatment: "Proton pump inhibitors, H2 blockers, Antacids",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A digestive disorder causing acid reflux",
			Precautions:     "Avoid trigger foods, eat smaller meals, elevate head during sleep",
			Category:        "Digestive",
		},
		{
			Name:            "Hypertension",
			Symptoms:        "headache, dizziness, blurred vision, chest pain, fatigue",
			AyurvedicRemedy: "Arjuna bark tea, sarpagandha, jatamansi, garlic",
			ModernTreatment: "ACE inhibitors, Beta blockers, Diuretics",
			SeverityLevel:   entities.SeveritySevere,
			Description:     "High blood pressure requiring medical management",
			Precautions:     "Regular monitoring, low-salt diet, exercise, stress management",
			Category:        "Cardiovascular",
		},
		{
			Name:            "Angina",
			Symptoms:        "chest pain, pressure in chest, pain radiating to arms, shortness of breath, fatigue",
			AyurvedicRemedy: "Arjuna bark, guggulu, pushkarmool, garlic",
			ModernTreatment: "Nitroglycerin, Beta blockers, Calcium channel blockers",
			SeverityLevel:   entities.SeveritySevere,
			Description:     "Chest pain due to reduced blood flow to heart",
			Precautions:     "Immediate medical attention, avoid strenuous activity, quit smoking",
			Category:        "Cardiovascular",
		},
		{
			Name:            "Migraine",
			Symptoms:        "throbbing headache, nausea, sensitivity to light, sensitivity to sound, vomiting",
			AyurvedicRemedy: "Brahmi, shankhpushpi, jatamansi, peppermint tea",
			ModernTreatment: "Triptans, NSAIDs, Anti-emetics, Preventive medications",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A neurological condition causing severe headaches",
			Precautions:     "Identify triggers, maintain regular sleep, avoid stress, stay hydrated",
			Category:        "Neurological",
		},
		{
			Name:            "Tension Headache",
			Symptoms:        "mild to moderate headache, pressure around head, neck pain, stress",
			AyurvedicRemedy: "Brahmi, shankhpushpi, lavender oil, peppermint oil",
			ModernTreatment: "Paracetamol, Ibuprofen, Muscle relaxants",
			SeverityLevel:   entities.SeverityMild,
			Description:     "Common headache caused by stress and muscle tension",
			Precautions:     "Stress management, regular breaks, good posture, relaxation techniques",
			Category:        "Neurological",
		},
		{
			Name:            "Vertigo",
			Symptoms:        "dizziness, spinning sensation, nausea, balance issues, sweating",
			AyurvedicRemedy: "Ginger tea, brahmi oil, avoid sudden movements",
			ModernTreatment: "Antihistamines, Benzodiazepines, Anti-emetics",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A sensation of spinning or dizziness",
			Precautions:     "Avoid triggers, move slowly, stay hydrated",
			Category:        "Neurological",
		},
		{
			Name:            "Arthritis",
			Symptoms:        "joint pain, stiffness, swelling, reduced mobility, fatigue",
			AyurvedicRemedy: "Guggulu, shallaki, ashwagandha, turmeric with milk",
			ModernTreatment: "NSAIDs, Corticosteroids, Disease-modifying antirheumatic drugs",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Inflammation of joints causing pain and stiffness",
			Precautions:     "Regular exercise, weight management, joint protection, balanced diet",
			Category:        "Musculoskeletal",
		},
		{
			Name:            "Back Pain",
			Symptoms:        "lower back pain, stiffness, muscle spasms, radiating pain, difficulty moving",
			AyurvedicRemedy: "Ashwagandha, guggulu, shallaki, sesame oil massage",
			ModernTreatment: "NSAIDs, Muscle relaxants, Physical therapy, Heat therapy",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Common condition affecting the lower back muscles and spine",
			Precautions:     "Good posture, regular exercise, proper lifting techniques, ergonomic setup",
			Category:        "Musculoskeletal",
		},
		{
			Name:            "Gout",
			Symptoms:        "sudden joint pain, swelling, redness, warmth, stiffness",
			AyurvedicRemedy: "Cherry juice, ginger tea, avoid purine-rich foods",
			ModernTreatment: "NSAIDs, Colchicine, Corticosteroids",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A form of arthritis caused by uric acid buildup",
			Precautions:     "Stay hydrated, avoid alcohol, limit purine-rich foods",
			Category:        "Musculoskeletal",
		},
		{
			Name:            "Eczema",
			Symptoms:        "itchy skin, red patches, dry skin, inflammation, scaling",
			AyurvedicRemedy: "Neem paste, turmeric paste, coconut oil, aloe vera gel",
			ModernTreatment: "Topical corticosteroids, Moisturizers, Antihistamines",
			SeverityLevel:   entities.SeverityMild,
			Description:     "A chronic skin condition causing inflammation and itching",
			Precautions:     "Avoid triggers, moisturize regularly, gentle skin care, stress management",
			Category:        "Skin",
		},
		{
			Name:            "Acne",
			Symptoms:        "pimples, blackheads, whiteheads, inflammation, oily skin",
			AyurvedicRemedy: "Neem face mask, turmeric paste, sandalwood powder",
			ModernTreatment: "Benzoyl peroxide, Salicylic acid, Retinoids",
			SeverityLevel:   entities.SeverityMild,
			Description:     "A skin condition caused by clogged pores",
			Precautions:     "Cleanse skin regularly, avoid oily products, maintain hygiene",
			Category:        "Skin",
		},
		{
			Name:            "Psoriasis",
			Symptoms:        "red patches, silvery scales, itching, dry skin, joint pain",
			AyurvedicRemedy: "Neem oil, turmeric paste, aloe vera gel",
			ModernTreatment: "Topical corticosteroids, Vitamin D analogues, Retinoids",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A chronic autoimmune skin condition",
			Precautions:     "Moisturize skin, avoid triggers, manage stress",
			Category:        "Skin",
		},
		{
			Name:            "Diabetes Type 2",
			Symptoms:        "increased thirst, frequent urination, fatigue, blurred vision, slow healing",
			AyurvedicRemedy: "Fenugreek water, bitter gourd juice, cinnamon tea",
			ModernTreatment: "Metformin, Insulin, Sulfonylureas",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A chronic condition affecting blood sugar regulation",
			Precautions:     "Monitor blood sugar, follow diet plan, exercise regularly",
			Category:        "Endocrine",
		},
		{
			Name:            "Hypothyroidism",
			Symptoms:        "fatigue, weight gain, cold intolerance, dry skin, hair loss",
			AyurvedicRemedy: "Ashwagandha powder, guggul, kanchanara",
			ModernTreatment: "Levothyroxine, Thyroid hormone replacement",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Underactive thyroid gland",
			Precautions:     "Monitor thyroid levels, eat balanced diet, medication compliance",
			Category:        "Endocrine",
		},
		{
			Name:            "Anemia",
			Symptoms:        "fatigue, pale skin, shortness of breath, dizziness, cold hands",
			AyurvedicRemedy: "Pomegranate juice, beetroot juice, sesame seeds",
			ModernTreatment: "Iron supplements, Vitamin B12, Folic acid",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A condition with low red blood cell count",
			Precautions:     "Eat iron-rich foods, avoid tea with meals, regular check-ups",
			Category:        "Hematological",
		},
		{
			Name:            "Anxiety",
			Symptoms:        "excessive worry, restlessness, rapid heartbeat, sweating, sleep problems",
			AyurvedicRemedy: "Brahmi tea, jatamansi, shankhpushpi, ashwagandha",
			ModernTreatment: "SSRIs, Benzodiazepines, Cognitive behavioral therapy",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A mental health condition causing excessive worry",
			Precautions:     "Practice relaxation techniques, avoid caffeine, seek therapy",
			Category:        "Mental Health",
		},
		{
			Name:            "Depression",
			Symptoms:        "persistent sadness, loss of interest, fatigue, sleep changes, appetite changes",
			AyurvedicRemedy: "Saffron tea, ashwagandha powder, brahmi, yoga",
			ModernTreatment: "SSRIs, SNRIs, Psychotherapy, Lifestyle changes",
			SeverityLevel:   entities.SeveritySevere,
			Description:     "A serious mental health condition requiring professional treatment",
			Precautions:     "Seek professional help, maintain routine, social support",
			Category:        "Mental Health",
		},
		{
			Name:            "Insomnia",
			Symptoms:        "difficulty falling asleep, staying asleep, daytime fatigue, irritability",
			AyurvedicRemedy: "Warm milk with nutmeg, ashwagandha tea, meditation",
			ModernTreatment: "Melatonin, Sedative-hypnotics, Sleep hygiene",
			SeverityLevel:   entities.SeverityMild,
			Description:     "A sleep disorder causing difficulty in sleeping",
			Precautions:     "Maintain sleep schedule, avoid caffeine, create bedtime routine",
			Category:        "Mental Health",
		},
		{
			Name:            "Conjunctivitis",
			Symptoms:        "red eyes, itching, watery discharge, burning sensation, crusty eyes",
			AyurvedicRemedy: "Rose water eye wash, triphala eyewash, coriander water",
			ModernTreatment: "Antibiotic eye drops if bacterial, Antihistamine drops",
			SeverityLevel:   entities.SeverityMild,
			Description:     "Inflammation of the conjunctiva causing eye irritation",
			Precautions:     "Good hygiene, avoid touching eyes, separate towels",
			Category:        "Eye",
		},
		{
			Name:            "Ear Infection",
			Symptoms:        "ear pain, hearing loss, fever, fluid drainage, dizziness, pressure in ear",
			AyurvedicRemedy: "Garlic oil drops, tulsi tea, warm compress",
			ModernTreatment: "Antibiotics, Pain relievers, Ear drops",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Infection of the middle ear requiring medical treatment",
			Precautions:     "Keep ears dry, avoid inserting objects, treat colds promptly",
			Category:        "Ear",
		},
		{
			Name:            "Urinary Tract Infection",
			Symptoms:        "burning sensation during urination, frequent urination, cloudy urine, pelvic pain, fever",
			AyurvedicRemedy: "Coriander seed water, cranberry juice, barley water, coconut water",
			ModernTreatment: "Antibiotics, Increased fluid intake, Pain relievers",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "Infection of the urinary system requiring antibiotic treatment",
			Precautions:     "Stay hydrated, good hygiene, complete antibiotic course",
			Category:        "Urinary",
		},
		{
			Name:            "Kidney Stones",
			Symptoms:        "severe back pain, abdominal pain, blood in urine, nausea, vomiting",
			AyurvedicRemedy: "Coconut water, coriander seed water, lemon water",
			ModernTreatment: "Pain relievers, Alpha-blockers, Lithotripsy if large",
			SeverityLevel:   entities.SeveritySevere,
			Description:     "Hard deposits formed in the kidneys",
			Precautions:     "Stay hydrated, reduce salt intake, avoid oxalate-rich foods",
			Category:        "Urinary",
		},
		{
			Name:            "Strep Throat",
			Symptoms:        "sore throat, fever, swollen lymph nodes, difficulty swallowing",
			AyurvedicRemedy: "Turmeric gargle, licorice tea, honey with warm water",
			ModernTreatment: "Antibiotics, Pain relievers, Throat lozenges",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A bacterial infection in the throat",
			Precautions:     "Rest, stay hydrated, avoid spreading infection",
			Category:        "Respiratory",
		},
		{
			Name:            "Chickenpox",
			Symptoms:        "itchy rash, blisters, fever, fatigue, headache",
			AyurvedicRemedy: "Neem bath, turmeric paste, oatmeal bath",
			ModernTreatment: "Antiviral drugs, Antihistamines, Pain relievers",
			SeverityLevel:   entities.SeverityModerate,
			Description:     "A viral infection causing an itchy rash",
			Precautions:     "Avoid scratching, stay isolated, get vaccinated",
			Category:        "Infectious",
		},
		{
			Name:            "Measles",
			Symptoms:        "fever, rash, cough, runny nose, red eyes",
			AyurvedicRemedy: "Tulsi tea, saffron milk, rest",
			ModernTreatment: "Vitamin A, Pain relievers, Antipyretics",
			SeverityLevel:   entities.SeveritySevere,
			Description:     "A highly contagious viral infection",
			Precautions:     "Get vaccinated, avoid contact, rest, stay hydrated",
			Category:        "Infectious",
		},
	}
}

func seedMedicines() []entities.Medicine {
	return []entities.Medicine{
		{
			Name:              "Paracetamol",
			Description:       "Over-the-counter pain reliever and fever reducer",
			Dosage:            "500-1000mg every 4-6 hours, max 4000mg/day",
			SideEffects:       "Nausea, stomach upset, liver damage in high doses",
			Contraindications: "Liver disease, alcohol dependence, pregnancy (consult doctor)",
			Price:             price(5.99),
			Category:          "Pain Relief",
		},
		{
			Name:              "Ibuprofen",
			Description:       "Non-steroidal anti-inflammatory drug for pain and inflammation",
			Dosage:            "200-400mg every 4-6 hours, max 1200mg/day",
			SideEffects:       "Stomach upset, heartburn, increased bleeding risk",
			Contraindications: "Stomach ulcers, heart disease, kidney problems",
			Price:             price(7.99),
			Category:          "Pain Relief",
		},
		{
			Name:              "Aspirin",
			Description:       "Pain reliever and blood thinner",
			Dosage:            "325-650mg every 4-6 hours",
			SideEffects:       "Stomach irritation, bleeding risk, ringing in ears",
			Contraindications: "Bleeding disorders, stomach ulcers, children under 12",
			Price:             price(4.99),
			Category:          "Pain Relief",
		},
		{
			Name:              "Salbutamol",
			Description:       "Bronchodilator for asthma and breathing difficulties",
			Dosage:            "2 puffs every 4-6 hours as needed",
			SideEffects:       "Tremors, increased heart rate, nervousness",
			Contraindications: "Severe heart disease, uncontrolled arrhythmias",
			Price:             price(15.99),
			Category:          "Respiratory",
		},
		{
			Name:              "Amoxicillin",
			Description:       "Antibiotic for bacterial infections",
			Dosage:            "250-500mg three times daily for 7-10 days",
			SideEffects:       "Diarrhea, nausea, allergic reactions",
			Contraindications: "Penicillin allergy, mononucleosis",
			Price:             price(12.99),
			Category:          "Antibiotics",
		},
		{
			Name:              "Azithromycin",
			Description:       "Broad-spectrum macrolide antibiotic",
			Dosage:            "500mg on day one, then 250mg daily for 4 days",
			SideEffects:       "Diarrhea, nausea, abdominal pain",
			Contraindications: "Liver disease, QT prolongation",
			Price:             price(19.99),
			Category:          "Antibiotics",
		},
		{
			Name:              "Ciprofloxacin",
			Description:       "Fluoroquinolone antibiotic for urinary and GI infections",
			Dosage:            "250-750mg twice daily",
			SideEffects:       "Nausea, tendon damage, photosensitivity",
			Contraindications: "Pregnancy, children, tendon disorders",
			Price:             price(16.99),
			Category:          "Antibiotics",
		},
		{
			Name:              "Omeprazole",
			Description:       "Proton pump inhibitor for acid reflux and ulcers",
			Dosage:            "20-40mg once daily before breakfast",
			SideEffects:       "Headache, diarrhea, vitamin B12 deficiency",
			Contraindications: "Liver disease, pregnancy, long-term use",
			Price:             price(18.99),
			Category:          "Digestive",
		},
		{
			Name:              "Metformin",
			Description:       "Oral diabetes medication to control blood sugar",
			Dosage:            "500-2000mg daily in divided doses",
			SideEffects:       "Nausea, diarrhea, lactic acidosis (rare)",
			Contraindications: "Severe kidney disease, heart failure",
			Price:             price(25.99),
			Category:          "Diabetes",
		},
		{
			Name:              "Amlodipine",
			Description:       "Calcium channel blocker for high blood pressure",
			Dosage:            "5-10mg once daily",
			SideEffects:       "Swelling of ankles, dizziness, flushing",
			Contraindications: "Severe hypotension, heart failure",
			Price:             price(21.99),
			Category:          "Cardiovascular",
		},
		{
			Name:              "Lisinopril",
			Description:       "ACE inhibitor for hypertension and heart failure",
			Dosage:            "10-40mg once daily",
			SideEffects:       "Dry cough, dizziness, elevated potassium",
			Contraindications: "Pregnancy, history of angioedema",
			Price:             price(14.99),
			Category:          "Cardiovascular",
		},
		{
			Name:              "Atorvastatin",
			Description:       "Statin for lowering cholesterol",
			Dosage:            "10-80mg once daily",
			SideEffects:       "Muscle pain, liver enzyme elevation",
			Contraindications: "Active liver disease, pregnancy",
			Price:             price(23.99),
			Category:          "Cardiovascular",
		},
		{
			Name:              "Levothyroxine",
			Description:       "Thyroid hormone replacement",
			Dosage:            "25-200mcg once daily on empty stomach",
			SideEffects:       "Palpitations, weight loss, insomnia at high doses",
			Contraindications: "Untreated adrenal insufficiency, thyrotoxicosis",
			Price:             price(17.99),
			Category:          "Endocrine",
		},
		{
			Name:              "Sertraline",
			Description:       "SSRI antidepressant for depression and anxiety",
			Dosage:            "50-200mg once daily",
			SideEffects:       "Nausea, insomnia, sexual dysfunction",
			Contraindications: "MAOI use, bipolar disorder without mood stabilizer",
			Price:             price(28.99),
			Category:          "Mental Health",
		},
		{
			Name:              "Cetirizine",
			Description:       "Antihistamine for allergies",
			Dosage:            "10mg once daily",
			SideEffects:       "Drowsiness, dry mouth, headache",
			Contraindications: "Severe kidney disease",
			Price:             price(8.99),
			Category:          "Allergy",
		},
		{
			Name:              "Hydrocortisone",
			Description:       "Topical corticosteroid for skin inflammation",
			Dosage:            "Apply thin layer 1-2 times daily",
			SideEffects:       "Skin thinning, irritation with prolonged use",
			Contraindications: "Skin infections, open wounds",
			Price:             price(9.99),
			Category:          "Skin",
		},
		{
			Name:              "Fluconazole",
			Description:       "Antifungal for yeast infections",
			Dosage:            "150mg single dose for vaginal candidiasis",
			SideEffects:       "Nausea, headache, liver toxicity (rare)",
			Contraindications: "Liver disease, QT prolongation",
			Price:             price(13.99),
			Category:          "Antifungal",
		},
		{
			Name:              "Melatonin",
			Description:       "Natural sleep hormone supplement",
			Dosage:            "1-5mg 30 minutes before bedtime",
			SideEffects:       "Drowsiness, vivid dreams, headache",
			Contraindications: "Autoimmune disorders, pregnancy",
			Price:             price(11.99),
			Category:          "Sleep",
		},
		{
			Name:              "Vitamin D3",
			Description:       "Vitamin supplement for bone health and immunity",
			Dosage:            "1000-4000 IU daily",
			SideEffects:       "Rare at normal doses, hypercalcemia at high doses",
			Contraindications: "Hypercalcemia, kidney stones",
			Price:             price(10.99),
			Category:          "Supplements",
		},
		{
			Name:              "Dextromethorphan",
			Description:       "Cough suppressant for dry cough",
			Dosage:            "10-20mg every 4 hours",
			SideEffects:       "Drowsiness, dizziness, nausea",
			Contraindications: "MAOI use, chronic cough with mucus",
			Price:             price(6.99),
			Category:          "Respiratory",
		},
	}
}
