package bank

import "github.com/pavelanni/diagnostic/internal/model"

func builtinInfo() map[model.Subject]model.SubjectInfo {
	return map[model.Subject]model.SubjectInfo{
		model.SubjectMath: {
			Title:       "Mathematics",
			Description: "Test your understanding of calculus, algebra, geometry, and probability.",
		},
		model.SubjectPhysics: {
			Title:       "Physics",
			Description: "Challenge your knowledge of mechanics, thermodynamics, and quantum physics.",
		},
		model.SubjectChemistry: {
			Title:       "Chemistry",
			Description: "Examine your understanding of atomic structure, reactions, and organic chemistry.",
		},
		model.SubjectBiology: {
			Title:       "Biology",
			Description: "Test your knowledge of genetics, cell biology, physiology, and ecology.",
		},
	}
}

func opts(a, b, c, d string) map[model.OptionKey]string {
	return map[model.OptionKey]string{model.OptionA: a, model.OptionB: b, model.OptionC: c, model.OptionD: d}
}

func builtinQuestions() []model.Question {
	return []model.Question{
		// Mathematics
		{
			ID: "math-1", Subject: model.SubjectMath, Topic: "Calculus",
			Prompt:        "If $f(x) = e^x$ and $g(x) = \\ln(x)$, what is the value of $(f \\circ g)(e)$?",
			Options:       opts("1", "e", "e^2", "ln(e)"),
			CorrectAnswer: model.OptionB,
			Explanation:   "f(g(x)) = f(ln(x)) = e^(ln(x)) = x. Therefore, f(g(e)) = e.",
		},
		{
			ID: "math-2", Subject: model.SubjectMath, Topic: "Linear Algebra",
			Prompt:        "Given the matrix $A = \\begin{pmatrix} 2 & 2 \\\\ 1 & 3 \\end{pmatrix}$, what are its eigenvalues?",
			Options:       opts("1 and 4", "2 and 3", "0.5 and 4.5", "1.5 and 3.5"),
			CorrectAnswer: model.OptionA,
			Explanation:   "det(A - λI) = (2-λ)(3-λ) - 2 = λ² - 5λ + 4 = 0, so λ = 1 or λ = 4.",
		},
		{
			ID: "math-3", Subject: model.SubjectMath, Topic: "Probability",
			Prompt:        "A fair coin is tossed 5 times. What is the probability of getting exactly 3 heads?",
			Options:       opts("5/32", "1/5", "10/32", "1/2"),
			CorrectAnswer: model.OptionC,
			Explanation:   "C(5,3) × (1/2)^3 × (1/2)^2 = 10 × 1/32 = 10/32.",
		},
		{
			ID: "math-4", Subject: model.SubjectMath, Topic: "Geometry",
			Prompt:        "What is the volume of a sphere with radius $r$?",
			Options:       opts("4πr²", "4πr³/3", "2πr³", "πr³"),
			CorrectAnswer: model.OptionB,
			Explanation:   "The volume of a sphere is V = (4/3)πr³.",
		},
		{
			ID: "math-5", Subject: model.SubjectMath, Topic: "Calculus",
			Prompt:        "Evaluate the indefinite integral: $$\\int x^2 e^x \\, dx$$",
			Options:       opts("x²e^x - 2xe^x + 2e^x + C", "x²e^x - e^x + C", "x³e^x/3 + C", "x²e^x - 2∫ xe^x dx + C"),
			CorrectAnswer: model.OptionA,
			Explanation:   "Integrating by parts twice with u = x² and dv = e^x dx gives x²e^x - 2xe^x + 2e^x + C.",
		},

		// Physics
		{
			ID: "physics-1", Subject: model.SubjectPhysics, Topic: "Mechanics",
			Prompt:        "A ball is thrown vertically upward with an initial velocity of 20 m/s. How high will it go?",
			Options:       opts("10 m", "20 m", "40 m", "30 m"),
			CorrectAnswer: model.OptionB,
			Explanation:   "h = v²/(2g) = 20²/(2 × 9.8) ≈ 20 m.",
		},
		{
			ID: "physics-2", Subject: model.SubjectPhysics, Topic: "Electromagnetism",
			Prompt:        "What is the magnetic field at the center of a circular loop of radius $R$ carrying current $I$?",
			Options:       opts("μ₀I/2R", "μ₀I/R", "2μ₀I/R", "μ₀I/(2πR)"),
			CorrectAnswer: model.OptionA,
			Explanation:   "The field at the center of a circular loop is B = μ₀I/(2R).",
		},
		{
			ID: "physics-3", Subject: model.SubjectPhysics, Topic: "Thermodynamics",
			Prompt:        "Which statement describes the Second Law of Thermodynamics?",
			Options:       opts("Energy cannot be created or destroyed", "Heat flows from hot to cold", "The entropy of an isolated system never decreases", "Work can be completely converted to heat"),
			CorrectAnswer: model.OptionC,
			Explanation:   "The entropy of an isolated system tends to increase, reaching a maximum at equilibrium.",
		},
		{
			ID: "physics-4", Subject: model.SubjectPhysics, Topic: "Optics",
			Prompt:        "For a thin converging lens, if an object is placed at a distance of $2f$ from the lens, where will the image be formed?",
			Options:       opts("At infinity", "At 2f", "At f", "Between f and 2f"),
			CorrectAnswer: model.OptionB,
			Explanation:   "With 1/f = 1/d_o + 1/d_i and d_o = 2f, 1/d_i = 1/(2f), so d_i = 2f.",
		},
		{
			ID: "physics-5", Subject: model.SubjectPhysics, Topic: "Quantum Physics",
			Prompt:        "What is the de Broglie wavelength of an electron with momentum $p$?",
			Options:       opts("λ = h/p", "λ = hp", "λ = h/2p", "λ = 2h/p"),
			CorrectAnswer: model.OptionA,
			Explanation:   "λ = h/p, where h is Planck's constant and p is the momentum.",
		},

		// Chemistry
		{
			ID: "chemistry-1", Subject: model.SubjectChemistry, Topic: "Atomic Structure",
			Prompt:        "Which quantum number determines the shape of an orbital?",
			Options:       opts("Principal quantum number (n)", "Azimuthal quantum number (l)", "Magnetic quantum number (ml)", "Spin quantum number (ms)"),
			CorrectAnswer: model.OptionB,
			Explanation:   "The azimuthal quantum number l determines the orbital shape (s, p, d, f).",
		},
		{
			ID: "chemistry-2", Subject: model.SubjectChemistry, Topic: "Thermochemistry",
			Prompt:        "What is the enthalpy change for a reaction where 2 moles of bonds are broken (each requiring 400 kJ/mol) and 2 moles of bonds are formed (each releasing 450 kJ/mol)?",
			Options:       opts("+800 kJ", "-900 kJ", "+100 kJ", "-100 kJ"),
			CorrectAnswer: model.OptionD,
			Explanation:   "ΔH = bonds broken - bonds formed = (2 × 400) - (2 × 450) = -100 kJ.",
		},
		{
			ID: "chemistry-3", Subject: model.SubjectChemistry, Topic: "Equilibrium",
			Prompt:        "For the reaction $N_2(g) + 3H_2(g) \\rightleftharpoons 2NH_3(g)$, how would an increase in pressure affect the equilibrium?",
			Options:       opts("Shift toward products", "Shift toward reactants", "No effect", "Cannot be determined"),
			CorrectAnswer: model.OptionA,
			Explanation:   "Le Chatelier: higher pressure favors the side with fewer gas molecules, here 2 NH₃ versus 4 reactant molecules.",
		},
		{
			ID: "chemistry-4", Subject: model.SubjectChemistry, Topic: "Organic Chemistry",
			Prompt:        "What is the IUPAC name for CH₃-CH₂-CH(CH₃)-CH₂-CH₃?",
			Options:       opts("2-methylpentane", "3-methylpentane", "2-ethylbutane", "Hexane"),
			CorrectAnswer: model.OptionB,
			Explanation:   "The longest chain has 5 carbons with a methyl group on carbon 3: 3-methylpentane.",
		},
		{
			ID: "chemistry-5", Subject: model.SubjectChemistry, Topic: "Electrochemistry",
			Prompt:        "In a galvanic cell, which statement is correct?",
			Options:       opts("Oxidation occurs at the cathode", "Electrons flow from anode to cathode", "The anode has a positive charge", "Reduction occurs at the anode"),
			CorrectAnswer: model.OptionB,
			Explanation:   "Oxidation happens at the anode, reduction at the cathode, and electrons flow from anode (negative) to cathode (positive).",
		},

		// Biology
		{
			ID: "biology-1", Subject: model.SubjectBiology, Topic: "Genetics",
			Prompt:        "If a man with blood type AB has children with a woman with blood type O, what blood types can their children have?",
			Options:       opts("A and B only", "A, B, and AB", "A, B, AB, and O", "A and B and O only"),
			CorrectAnswer: model.OptionA,
			Explanation:   "The father (IAIB) passes IA or IB, the mother (ii) passes i, giving IAi (A) or IBi (B).",
		},
		{
			ID: "biology-2", Subject: model.SubjectBiology, Topic: "Cell Biology",
			Prompt:        "Which of the following organelles is NOT found in animal cells?",
			Options:       opts("Mitochondria", "Chloroplasts", "Golgi apparatus", "Lysosomes"),
			CorrectAnswer: model.OptionB,
			Explanation:   "Chloroplasts carry out photosynthesis and are found in plant cells only.",
		},
		{
			ID: "biology-3", Subject: model.SubjectBiology, Topic: "Ecology",
			Prompt:        "In a predator-prey relationship, if the predator population increases, what typically happens to the prey population over time?",
			Options:       opts("It increases steadily", "It decreases initially, then increases", "It decreases steadily", "It remains unchanged"),
			CorrectAnswer: model.OptionB,
			Explanation:   "More predators reduce the prey; scarce prey then reduces predators, letting prey recover.",
		},
		{
			ID: "biology-4", Subject: model.SubjectBiology, Topic: "Physiology",
			Prompt:        "Which hormone is responsible for regulating blood glucose levels by promoting cellular uptake of glucose?",
			Options:       opts("Glucagon", "Insulin", "Epinephrine", "Cortisol"),
			CorrectAnswer: model.OptionB,
			Explanation:   "Insulin from pancreatic beta cells promotes glucose uptake; glucagon has the opposite effect.",
		},
		{
			ID: "biology-5", Subject: model.SubjectBiology, Topic: "Molecular Biology",
			Prompt:        "During which phase of the cell cycle does DNA replication occur?",
			Options:       opts("G1 phase", "S phase", "G2 phase", "M phase"),
			CorrectAnswer: model.OptionB,
			Explanation:   "DNA is replicated during the S (synthesis) phase of interphase.",
		},
	}
}
