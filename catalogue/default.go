package catalogue

import "github.com/letmevibethatforyou/guidex"

// defaultGuidelines is the compiled-in catalogue served when no external
// source is configured.
var defaultGuidelines = []guidex.Guideline{
	{
		ID:       "apendicite-aguda",
		Name:     "Apendicite Aguda",
		Keywords: []string{"blumberg", "rovsing", "alvarado", "apendicectomia"},
		Symptoms: []string{"dor abdominal", "dor em fossa ilíaca direita", "febre", "náusea", "anorexia"},
		Category: "Cirurgia Geral",
	},
	{
		ID:       "colecistite-aguda",
		Name:     "Colecistite Aguda",
		Keywords: []string{"murphy", "vesícula", "tokyo guidelines", "colelitíase"},
		Symptoms: []string{"dor hipocôndrio direito", "febre", "vômitos"},
		Category: "Cirurgia Hepatobiliar",
	},
	{
		ID:       "pancreatite-aguda",
		Name:     "Pancreatite Aguda",
		Keywords: []string{"lipase", "amilase", "ranson", "atlanta"},
		Symptoms: []string{"dor epigástrica em faixa", "vômitos", "distensão abdominal"},
		Category: "Gastroenterologia",
	},
	{
		ID:       "sindrome-coronariana-aguda",
		Name:     "Síndrome Coronariana Aguda",
		Keywords: []string{"troponina", "supra de st", "heart score", "angioplastia"},
		Symptoms: []string{"dor torácica", "dor irradiada para membro superior esquerdo", "diaforese", "dispneia"},
		Category: "Cardiologia",
	},
	{
		ID:       "insuficiencia-cardiaca-descompensada",
		Name:     "Insuficiência Cardíaca Descompensada",
		Keywords: []string{"bnp", "furosemida", "perfil hemodinâmico"},
		Symptoms: []string{"dispneia", "ortopneia", "edema de membros inferiores", "estertores"},
		Category: "Cardiologia",
	},
	{
		ID:       "avc-isquemico",
		Name:     "AVC Isquêmico",
		Keywords: []string{"trombólise", "nihss", "alteplase", "janela terapêutica"},
		Symptoms: []string{"hemiparesia", "desvio de rima", "afasia", "cefaleia súbita"},
		Category: "Neurologia",
	},
	{
		ID:       "meningite-bacteriana",
		Name:     "Meningite Bacteriana",
		Keywords: []string{"kernig", "brudzinski", "punção lombar", "ceftriaxona"},
		Symptoms: []string{"febre", "rigidez de nuca", "cefaleia", "fotofobia"},
		Category: "Infectologia",
	},
	{
		ID:       "sepse",
		Name:     "Sepse e Choque Séptico",
		Keywords: []string{"qsofa", "lactato", "antibioticoterapia precoce", "noradrenalina"},
		Symptoms: []string{"febre", "hipotensão", "taquicardia", "confusão mental"},
		Category: "Medicina Intensiva",
	},
	{
		ID:       "pneumonia-comunidade",
		Name:     "Pneumonia Adquirida na Comunidade",
		Keywords: []string{"curb-65", "amoxicilina", "raio-x de tórax"},
		Symptoms: []string{"tosse produtiva", "febre", "dispneia", "dor pleurítica"},
		Category: "Pneumologia",
	},
	{
		ID:       "asma-exacerbada",
		Name:     "Crise de Asma",
		Keywords: []string{"salbutamol", "peak flow", "corticoide sistêmico"},
		Symptoms: []string{"sibilância", "dispneia", "tosse seca", "aperto no peito"},
		Category: "Pneumologia",
	},
	{
		ID:       "tromboembolismo-pulmonar",
		Name:     "Tromboembolismo Pulmonar",
		Keywords: []string{"d-dímero", "wells", "angiotomografia", "anticoagulação"},
		Symptoms: []string{"dispneia súbita", "dor pleurítica", "taquicardia", "hemoptise"},
		Category: "Pneumologia",
	},
	{
		ID:       "cetoacidose-diabetica",
		Name:     "Cetoacidose Diabética",
		Keywords: []string{"insulina regular", "ânion gap", "cetonemia"},
		Symptoms: []string{"poliúria", "polidipsia", "dor abdominal", "hálito cetônico", "respiração de kussmaul"},
		Category: "Endocrinologia",
	},
	{
		ID:       "pielonefrite-aguda",
		Name:     "Pielonefrite Aguda",
		Keywords: []string{"giordano", "urocultura", "ciprofloxacino"},
		Symptoms: []string{"febre", "dor lombar", "disúria", "calafrios"},
		Category: "Nefrologia",
	},
	{
		ID:       "dengue",
		Name:     "Dengue",
		Keywords: []string{"prova do laço", "sinais de alarme", "hidratação venosa"},
		Symptoms: []string{"febre", "mialgia", "dor retro-orbitária", "exantema"},
		Category: "Infectologia",
	},
	{
		ID:       "crise-hipertensiva",
		Name:     "Crise Hipertensiva",
		Keywords: []string{"emergência hipertensiva", "urgência hipertensiva", "lesão de órgão-alvo"},
		Symptoms: []string{"cefaleia", "dor torácica", "alteração visual"},
		Category: "Cardiologia",
	},
	{
		ID:       "anafilaxia",
		Name:     "Anafilaxia",
		Keywords: []string{"adrenalina intramuscular", "angioedema"},
		Symptoms: []string{"urticária", "edema de glote", "hipotensão", "dispneia"},
		Category: "Emergência",
	},
}

// Default returns a copy of the compiled-in catalogue in its fixed order.
func Default() []guidex.Guideline {
	return guidex.CloneAll(defaultGuidelines)
}
