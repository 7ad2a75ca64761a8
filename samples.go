package cv2pdf

import (
	"fmt"
	"strings"
)

// masterData holds sample values for every field consumed by the bundled
// templates. Document-type loaders project it into the subset each type
// uses. Values that are raw LaTeX by design (position, recipient_address)
// are rendered unescaped by the templates.
var masterData = Data{
	// Personal info, used by all document types.
	"first_name": "John",
	"last_name":  "Doe",
	"position":   `Software Engineer{\enskip\cdotp\enskip}DevOps Specialist`,
	"address":    "123 Main Street, San Francisco, CA 94102, USA",
	"mobile":     "(555) 123-4567",
	"email":      "john.doe@example.com",
	"homepage":   "www.johndoe.com",
	"github":     "johndoe",
	"linkedin":   "johndoe",
	"quote":      "Make it work, make it right, make it fast.",

	// Resume-specific.
	"summary": "Experienced Software Engineer with 10+ years in cloud infrastructure " +
		"and DevOps practices. Specialized in AWS, Kubernetes, and Infrastructure " +
		"as Code. Passionate about automation, reliability, and scalable systems.",

	// Experience, used by resume and cv.
	"experience": []any{
		map[string]any{
			"title":        "Senior DevOps Engineer",
			"organization": "Tech Corp Inc.",
			"location":     "San Francisco, CA",
			"period":       "Jan. 2020 - Present",
			"details": []any{
				"Led migration of legacy infrastructure to Kubernetes, reducing costs by 40%",
				"Implemented GitOps workflows with ArgoCD and Terraform",
				"Established comprehensive monitoring with Prometheus and Grafana",
			},
		},
		map[string]any{
			"title":        "Software Engineer",
			"organization": "Startup Inc.",
			"location":     "San Francisco, CA",
			"period":       "Jun. 2015 - Dec. 2019",
			"details": []any{
				"Developed microservices architecture using Docker and Kubernetes",
				"Built CI/CD pipelines with Jenkins and GitHub Actions",
			},
		},
	},

	// Education, used by resume and cv.
	"education": []any{
		map[string]any{
			"degree":      "B.S. in Computer Science",
			"institution": "University of California, Berkeley",
			"location":    "Berkeley, CA",
			"period":      "Sep. 2011 - May 2015",
			"details": []any{
				"GPA: 3.8/4.0",
				"Dean's List all semesters",
			},
		},
	},

	// Honors, used by resume and cv.
	"honor_subsections": []any{
		map[string]any{
			"title": "Industry Awards",
			"honors": []any{
				map[string]any{
					"award":    "Best DevOps Practice",
					"event":    "DevOps Summit 2023",
					"location": "San Francisco, CA",
					"date":     "2023",
				},
			},
		},
	},

	// Certificates, used by resume.
	"certificates": []any{
		map[string]any{
			"title":        "AWS Certified Solutions Architect - Professional",
			"organization": "Amazon Web Services",
			"location":     "",
			"date":         "2023",
		},
		map[string]any{
			"title":        "Certified Kubernetes Administrator (CKA)",
			"organization": "The Linux Foundation",
			"location":     "",
			"date":         "2022",
		},
	},

	// Skills, used by cv.
	"skills": []any{
		map[string]any{
			"category": "Cloud & Infrastructure",
			"list":     "AWS, GCP, Azure, Terraform, Ansible, Packer",
		},
		map[string]any{
			"category": "Container & Orchestration",
			"list":     "Docker, Kubernetes, Helm, ArgoCD, Rancher",
		},
		map[string]any{
			"category": "Programming",
			"list":     "Python, Go, Bash, JavaScript, Node.js",
		},
	},

	// Cover letter.
	"recipient_name":    "Engineering Team",
	"recipient_address": `Tech Company Inc.\\100 Innovation Drive\\Silicon Valley, CA 94025`,
	"letter_title":      "Application for Senior DevOps Engineer Position",
	"letter_opening":    "Dear Hiring Manager,",
	"letter_closing":    "Sincerely,",
	"letter_enclosure":  "[Attached]{Resume}",
	"header_alignment":  "R",
	"letter_sections": []any{
		map[string]any{
			"title": "About Me",
			"content": "I am writing to express my strong interest in the Senior DevOps " +
				"Engineer position at Tech Company Inc. With over 10 years of " +
				"experience in software engineering and DevOps practices, I am " +
				"confident that I can contribute significantly to your team.",
		},
		map[string]any{
			"title": "Why Your Company",
			"content": "I am particularly impressed by your company's commitment to " +
				"innovation and technical excellence. Your recent work on cloud-native " +
				"architectures aligns perfectly with my expertise and passion.",
		},
		map[string]any{
			"title": "What I Bring",
			"content": "Throughout my career, I have successfully led infrastructure " +
				"migrations, implemented robust CI/CD pipelines, and established " +
				"monitoring systems that improved system reliability. I am excited " +
				"about the opportunity to bring these skills to your organization.",
		},
	},
}

// coverletterFields is the projection of masterData used by the
// coverletter document type.
var coverletterFields = []string{
	"first_name", "last_name", "position", "address",
	"mobile", "email", "homepage", "github", "linkedin",
	"recipient_name", "recipient_address",
	"letter_title", "letter_opening", "letter_closing",
	"letter_sections", "letter_enclosure", "header_alignment",
}

// LoadSample returns sample data for a document type: "resume", "cv",
// "coverletter", or "master" for the complete field set. Every call
// returns an independent deep copy, so mutating one loaded sample never
// affects another.
func LoadSample(docType string) (Data, error) {
	switch docType {
	case "resume":
		data := masterData.DeepCopy()
		data["sections"] = map[string]any{
			"summary":      true,
			"experience":   true,
			"education":    true,
			"honors":       true,
			"certificates": true,
		}
		delete(data, "header_alignment")
		return data, nil
	case "cv":
		data := masterData.DeepCopy()
		data["sections"] = map[string]any{
			"education":  true,
			"skills":     true,
			"experience": true,
			"honors":     true,
		}
		delete(data, "header_alignment")
		return data, nil
	case "coverletter":
		full := masterData.DeepCopy()
		data := make(Data, len(coverletterFields))
		for _, field := range coverletterFields {
			if v, ok := full[field]; ok {
				data[field] = v
			}
		}
		return data, nil
	case "master":
		return masterData.DeepCopy(), nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSample, docType,
		strings.Join([]string{"resume", "cv", "coverletter", "master"}, ", "))
}
